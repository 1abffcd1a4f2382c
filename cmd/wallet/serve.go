package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/evm-wallet/evm"
	"github.com/AlexZinkM/evm-wallet/internal/api"
	"github.com/AlexZinkM/evm-wallet/internal/client"
	"github.com/AlexZinkM/evm-wallet/internal/config"
	"github.com/AlexZinkM/evm-wallet/internal/custody"
	"github.com/AlexZinkM/evm-wallet/internal/hostshell"
	"github.com/AlexZinkM/evm-wallet/internal/network"
	"github.com/AlexZinkM/evm-wallet/internal/wallet"

	badger "github.com/ipfs/go-ds-badger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, config.Get())
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := zap.S()

	networks := network.Builtin()
	if cfg.NetworksFile != "" {
		var err error
		if networks, err = network.LoadFile(cfg.NetworksFile); err != nil {
			return err
		}
	}

	ds, err := badger.NewDatastore(cfg.DataDir, &badger.DefaultOptions)
	if err != nil {
		return err
	}

	custodyOpts := []custody.Option{}
	sessionOpts := []wallet.Option{
		wallet.Networks(networks),
		wallet.DefaultNetwork(cfg.Network),
		wallet.ConfirmTimeout(cfg.ConfirmTimeout),
		wallet.SendCooldown(cfg.SendCooldown),
	}
	if config.BackendEnabled() {
		backend, err := client.NewBackendClient(cfg.BackendURL, cfg.BackendAnonKey)
		if err != nil {
			return err
		}
		custodyOpts = append(custodyOpts, custody.RemoteBackup(backend))
		sessionOpts = append(sessionOpts, wallet.Accounts(backend))
	}
	if cfg.TelegramInitData != "" {
		provider := hostshell.NewTelegramProvider(cfg.TelegramInitData, cfg.TelegramBotToken, cfg.TelegramInitMaxAge)
		sessionOpts = append(sessionOpts, wallet.HostIdentity(provider))
	}

	keys, err := custody.NewManager(ds, custodyOpts...)
	if err != nil {
		ds.Close()
		return err
	}
	defer keys.Close()

	gateway, err := evm.NewGateway(evm.PollInterval(cfg.ConfirmPoll))
	if err != nil {
		return err
	}

	session, err := wallet.NewSession(keys, gateway, sessionOpts...)
	if err != nil {
		return err
	}
	defer session.Close()

	router, err := api.SetupRouter(session)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server listening", "addr", srv.Addr, "session", session.ID(), "swagger", "/swagger/index.html")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
