// Command wallet runs the local wallet service.
// Usage: go run ./cmd/wallet serve
package main

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/evm-wallet/evm"
	"github.com/AlexZinkM/evm-wallet/internal/config"
	"github.com/AlexZinkM/evm-wallet/internal/wallet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	root := &cobra.Command{
		Use:           "wallet",
		Short:         "Non-custodial EVM wallet",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(); err != nil {
				return err
			}
			return setupLogger(config.Get().LogLevel)
		},
	}
	root.AddCommand(serveCmd(), passwdCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	evm.UpdateLogger(logger)
	wallet.UpdateLogger(logger)
	return nil
}
