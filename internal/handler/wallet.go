package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/AlexZinkM/wallet-store/internal/command"
	"github.com/AlexZinkM/wallet-store/internal/model"
	"github.com/AlexZinkM/wallet-store/internal/store"

	"github.com/skip2/go-qrcode"
)

const (
	// maxBodyBytes bounds request bodies; keystores are a few KiB.
	maxBodyBytes = 4 << 20
	qrSize       = 256
)

// WalletHandler serves the wallet store over HTTP
type WalletHandler struct {
	store          *store.Store
	commands       *command.Dispatcher
	addressEnabled bool
}

// NewWalletHandler creates a new WalletHandler. With addressEnabled false the
// handler behaves like the keystore-only backend: address reads are 404 and
// save ignores the address field.
func NewWalletHandler(s *store.Store, addressEnabled bool) (*WalletHandler, error) {
	if s == nil {
		return nil, errors.New("wallet store not set")
	}
	return &WalletHandler{
		store:          s,
		commands:       command.NewDispatcher(s, addressEnabled),
		addressEnabled: addressEnabled,
	}, nil
}

// Invoke handles POST /invoke/{command}
// @Summary      Invoke a wallet command
// @Description  Runs save_wallet_file, read_wallet_file, read_wallet_address or wallet_exists with a JSON args object
// @Tags         invoke
// @Accept       json
// @Produce      json
// @Param        command  path      string  true   "Command name"
// @Param        args     body      object  false  "Command arguments"
// @Success      200      {object}  model.InvokeResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Failure      500      {object}  model.ErrorResponse
// @Router       /invoke/{command} [post]
func (h *WalletHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/invoke/"), "/")
	args, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err)
		return
	}

	result, err := h.commands.Dispatch(name, args)
	if err != nil {
		switch {
		case command.IsUnknownCommandError(err):
			writeError(w, http.StatusNotFound, model.CodeUnknownCommand, err)
		case command.IsArgsError(err):
			writeError(w, http.StatusBadRequest, model.CodeBadRequest, err)
		default:
			writeStoreError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, model.InvokeResponse{Result: result})
}

// Save handles POST /wallet/save
// @Summary      Save wallet keystore
// @Description  Overwrites the keystore file and, when address is present, the address file
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.SaveRequest  true  "Keystore and optional address"
// @Success      200      {object}  model.SaveResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      500      {object}  model.ErrorResponse
// @Router       /wallet/save [post]
func (h *WalletHandler) Save(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SaveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err)
		return
	}
	if req.Data == nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, errors.New("data is required"))
		return
	}

	var (
		msg string
		err error
	)
	if h.addressEnabled && req.Address != nil {
		msg, err = h.store.SaveWalletAndAddress(*req.Data, *req.Address)
	} else {
		msg, err = h.store.SaveWallet(*req.Data)
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SaveResponse{Success: true, Message: msg})
}

// Keystore handles GET /wallet/keystore
// @Summary      Read wallet keystore
// @Description  Returns the stored keystore exactly as it was saved
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.KeystoreResponse
// @Failure      404  {object}  model.ErrorResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /wallet/keystore [get]
func (h *WalletHandler) Keystore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	data, err := h.store.ReadWallet()
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.KeystoreResponse{Data: data})
}

// Address handles GET /wallet/address
// @Summary      Read wallet address
// @Description  Returns the plaintext public address saved with the keystore
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.AddressResponse
// @Failure      404  {object}  model.ErrorResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /wallet/address [get]
func (h *WalletHandler) Address(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	address, ok := h.readAddress(w)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, model.AddressResponse{Address: address})
}

// AddressQR handles GET /wallet/address/qr
// @Summary      Wallet address QR code
// @Description  Returns a PNG QR code of the stored address for recovery verification
// @Tags         wallet
// @Produce      png
// @Success      200  {file}    binary
// @Failure      404  {object}  model.ErrorResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /wallet/address/qr [get]
func (h *WalletHandler) AddressQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	address, ok := h.readAddress(w)
	if !ok {
		return
	}

	png, err := qrcode.Encode(address, qrcode.Medium, qrSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.CodeQREncode, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// Exists handles GET /wallet/exists
// @Summary      Check wallet existence
// @Description  Reports whether a keystore file has been saved. Never fails.
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.ExistsResponse
// @Router       /wallet/exists [get]
func (h *WalletHandler) Exists(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, model.ExistsResponse{Exists: h.store.WalletExists()})
}

func (h *WalletHandler) readAddress(w http.ResponseWriter) (string, bool) {
	if !h.addressEnabled {
		writeError(w, http.StatusNotFound, model.CodeNotFound, command.ErrAddressDisabled)
		return "", false
	}
	address, err := h.store.ReadAddress()
	if err != nil {
		writeStoreError(w, err)
		return "", false
	}
	return address, true
}
