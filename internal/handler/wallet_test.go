package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlexZinkM/wallet-store/internal/hostenv"
	"github.com/AlexZinkM/wallet-store/internal/model"
	"github.com/AlexZinkM/wallet-store/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, addressEnabled bool) *WalletHandler {
	t.Helper()
	s, err := store.New(hostenv.FixedDir(filepath.Join(t.TempDir(), "app")))
	require.NoError(t, err)
	h, err := NewWalletHandler(s, addressEnabled)
	require.NoError(t, err)
	return h
}

func do(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&v), rr.Body.String())
	return v
}

func TestSaveAndReadOverHTTP(t *testing.T) {
	h := newTestHandler(t, true)

	rr := do(h.Exists, http.MethodGet, "/wallet/exists", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decode[model.ExistsResponse](t, rr).Exists)

	rr = do(h.Keystore, http.MethodGet, "/wallet/keystore", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	errResp := decode[model.ErrorResponse](t, rr)
	assert.Equal(t, "No wallet file found.", errResp.Error)
	assert.Equal(t, model.CodeNotFound, errResp.Code)

	rr = do(h.Save, http.MethodPost, "/wallet/save", `{"data":"ENCRYPTED_BLOB_1","address":"0xABC123"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	saved := decode[model.SaveResponse](t, rr)
	assert.True(t, saved.Success)
	assert.Equal(t, "Saved successfully", saved.Message)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	rr = do(h.Keystore, http.MethodGet, "/wallet/keystore", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ENCRYPTED_BLOB_1", decode[model.KeystoreResponse](t, rr).Data)

	rr = do(h.Address, http.MethodGet, "/wallet/address", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "0xABC123", decode[model.AddressResponse](t, rr).Address)

	rr = do(h.Exists, http.MethodGet, "/wallet/exists", "")
	assert.True(t, decode[model.ExistsResponse](t, rr).Exists)
}

func TestSaveRejectsBadBody(t *testing.T) {
	h := newTestHandler(t, true)

	rr := do(h.Save, http.MethodPost, "/wallet/save", `{"data":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, model.CodeBadRequest, decode[model.ErrorResponse](t, rr).Code)

	rr = do(h.Save, http.MethodPost, "/wallet/save", `{"address":"0xABC"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "data is required", decode[model.ErrorResponse](t, rr).Error)

	rr = do(h.Exists, http.MethodGet, "/wallet/exists", "")
	assert.False(t, decode[model.ExistsResponse](t, rr).Exists)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, true)

	assert.Equal(t, http.StatusMethodNotAllowed, do(h.Save, http.MethodGet, "/wallet/save", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(h.Keystore, http.MethodPost, "/wallet/keystore", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(h.Exists, http.MethodDelete, "/wallet/exists", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(h.Invoke, http.MethodGet, "/invoke/wallet_exists", "").Code)
}

func TestInvoke(t *testing.T) {
	h := newTestHandler(t, true)

	rr := do(h.Invoke, http.MethodPost, "/invoke/save_wallet_file", `{"data":"blob","address":"0xABC"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Saved successfully", decode[model.InvokeResponse](t, rr).Result)

	rr = do(h.Invoke, http.MethodPost, "/invoke/read_wallet_file", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "blob", decode[model.InvokeResponse](t, rr).Result)

	rr = do(h.Invoke, http.MethodPost, "/invoke/wallet_exists", "{}")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, decode[model.InvokeResponse](t, rr).Result)

	rr = do(h.Invoke, http.MethodPost, "/invoke/open_sesame", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, model.CodeUnknownCommand, decode[model.ErrorResponse](t, rr).Code)

	rr = do(h.Invoke, http.MethodPost, "/invoke/save_wallet_file", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestInvokeNotFoundIsFlattened(t *testing.T) {
	h := newTestHandler(t, true)

	rr := do(h.Invoke, http.MethodPost, "/invoke/read_wallet_address", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	resp := decode[model.ErrorResponse](t, rr)
	assert.Equal(t, "No address file found.", resp.Error)
	assert.Equal(t, model.CodeNotFound, resp.Code)
}

func TestAddressQR(t *testing.T) {
	h := newTestHandler(t, true)

	rr := do(h.AddressQR, http.MethodGet, "/wallet/address/qr", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(h.Save, http.MethodPost, "/wallet/save", `{"data":"blob","address":"0xABC123"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(h.AddressQR, http.MethodGet, "/wallet/address/qr", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("\x89PNG")))
}

func TestAddressQREmptyAddress(t *testing.T) {
	h := newTestHandler(t, true)

	rr := do(h.Save, http.MethodPost, "/wallet/save", `{"data":"blob","address":""}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(h.AddressQR, http.MethodGet, "/wallet/address/qr", "")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, model.CodeQREncode, decode[model.ErrorResponse](t, rr).Code)
}

func TestAddressDisabled(t *testing.T) {
	h := newTestHandler(t, false)

	rr := do(h.Save, http.MethodPost, "/wallet/save", `{"data":"blob","address":"0xABC123"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(h.Address, http.MethodGet, "/wallet/address", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "address record is disabled", decode[model.ErrorResponse](t, rr).Error)

	rr = do(h.Keystore, http.MethodGet, "/wallet/keystore", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "blob", decode[model.KeystoreResponse](t, rr).Data)
}

func TestNewWalletHandlerRequiresStore(t *testing.T) {
	_, err := NewWalletHandler(nil, true)
	assert.Error(t, err)
}
