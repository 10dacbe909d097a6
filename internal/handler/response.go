package handler

import (
	"log/slog"
	"net/http"

	"github.com/AlexZinkM/wallet-store/internal/model"
	"github.com/AlexZinkM/wallet-store/internal/store"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("write response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

// writeStoreError maps a store error to 404 for a missing record and 500
// for everything else.
func writeStoreError(w http.ResponseWriter, err error) {
	if store.IsNotFound(err) {
		writeError(w, http.StatusNotFound, model.CodeNotFound, err)
		return
	}
	writeError(w, http.StatusInternalServerError, model.CodeIO, err)
}
