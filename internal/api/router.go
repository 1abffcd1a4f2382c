package api

import (
	"net/http"

	_ "github.com/AlexZinkM/evm-wallet/docs"
	"github.com/AlexZinkM/evm-wallet/internal/handler"
	"github.com/AlexZinkM/evm-wallet/internal/wallet"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(session *wallet.Session) (http.Handler, error) {
	walletHandler, err := handler.NewWalletHandler(session)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallet/status", walletHandler.Status)
	mux.HandleFunc("/wallet/create", walletHandler.Create)
	mux.HandleFunc("/wallet/unlock", walletHandler.Unlock)
	mux.HandleFunc("/wallet/restore", walletHandler.Restore)
	mux.HandleFunc("/wallet/backup", walletHandler.Backup)
	mux.HandleFunc("/wallet/delete", walletHandler.Delete)
	mux.HandleFunc("/wallet/balance", walletHandler.GetBalance)
	mux.HandleFunc("/wallet/receive", walletHandler.Receive)
	mux.HandleFunc("/wallet/send", walletHandler.Send)

	// Network endpoints
	mux.HandleFunc("/networks", walletHandler.ListNetworks)
	mux.HandleFunc("/networks/select", walletHandler.SelectNetwork)

	// Account endpoints
	mux.HandleFunc("/account", walletHandler.Account)
	mux.HandleFunc("/account/signup", walletHandler.SignUp)
	mux.HandleFunc("/account/signin", walletHandler.SignIn)
	mux.HandleFunc("/account/username", walletHandler.SetUsername)
	mux.HandleFunc("/account/signout", walletHandler.SignOut)

	return mux, nil
}
