package api

import (
	"net/http"

	_ "github.com/AlexZinkM/wallet-store/docs"
	"github.com/AlexZinkM/wallet-store/internal/handler"
	"github.com/AlexZinkM/wallet-store/internal/store"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options controls which routes are served and how they are limited.
type Options struct {
	AddressRecord  bool
	RateLimitRPS   float64 // <= 0 disables limiting
	RateLimitBurst int
}

// SetupRouter sets up router with handlers
func SetupRouter(s *store.Store, opts Options) (http.Handler, error) {
	walletHandler, err := handler.NewWalletHandler(s, opts.AddressRecord)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Host command dispatch
	mux.HandleFunc("/invoke/", walletHandler.Invoke)

	// Wallet endpoints
	mux.HandleFunc("/wallet/save", walletHandler.Save)
	mux.HandleFunc("/wallet/keystore", walletHandler.Keystore)
	mux.HandleFunc("/wallet/exists", walletHandler.Exists)
	// answered with a JSON 404 when the address record is off
	mux.HandleFunc("/wallet/address", walletHandler.Address)
	mux.HandleFunc("/wallet/address/qr", walletHandler.AddressQR)

	var h http.Handler = mux
	h = newRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).middleware(h)
	h = recoverHostEnvironment(h)
	return h, nil
}
