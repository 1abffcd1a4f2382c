package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/evm-wallet/internal/config"
	"github.com/AlexZinkM/evm-wallet/internal/crypto"
	"github.com/AlexZinkM/evm-wallet/internal/custody"
	"github.com/AlexZinkM/evm-wallet/internal/wallet"

	badger "github.com/ipfs/go-ds-badger"
	"github.com/spf13/cobra"
)

func passwdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the password of the wallet saved on this device",
		Long: "Re-encrypts the wallet saved on this device with a new password. " +
			"A remote backup keeps the old password until the next backup.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := badger.NewDatastore(config.GetDataDir(), &badger.DefaultOptions)
			if err != nil {
				return err
			}
			keys, err := custody.NewManager(ds)
			if err != nil {
				ds.Close()
				return err
			}
			defer keys.Close()

			blob, err := keys.LoadLocal(cmd.Context())
			if err != nil {
				return err
			}
			address, err := crypto.ReadAddress(blob)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Wallet:", address.Hex())

			oldPassword, err := config.PromptForPassword("Current password: ")
			if err != nil {
				return err
			}
			defer clear(oldPassword)

			newPassword, err := config.PromptForPassword("New password: ")
			if err != nil {
				return err
			}
			defer clear(newPassword)
			if len(newPassword) < wallet.MinPasswordLength {
				return wallet.ErrPasswordTooShort
			}

			repeat, err := config.PromptForPassword("Repeat new password: ")
			if err != nil {
				return err
			}
			defer clear(repeat)
			if !bytes.Equal(newPassword, repeat) {
				return errors.New("passwords do not match")
			}

			updated, err := keys.Reencrypt(blob, oldPassword, newPassword)
			if err != nil {
				return err
			}
			if err := keys.PersistLocal(cmd.Context(), updated); err != nil {
				return err
			}

			fmt.Fprintln(os.Stderr, "Password changed.")
			return nil
		},
	}
}
