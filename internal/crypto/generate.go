package crypto

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

// MnemonicEntropyBits gives a 12 word recovery phrase
const MnemonicEntropyBits = 128

// DerivationPath is m/44'/60'/0'/0/0, the first account of the standard Ethereum BIP-44 branch
var DerivationPath = []uint32{
	hdkeychain.HardenedKeyStart + 44,
	hdkeychain.HardenedKeyStart + 60,
	hdkeychain.HardenedKeyStart + 0,
	0,
	0,
}

// KeyMaterial is a freshly generated or recovered wallet key.
// Mnemonic is empty when the key did not come from a recovery phrase.
type KeyMaterial struct {
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
	Mnemonic   string
}

// GenerateKey produces a random recovery phrase and the key derived from it
func GenerateKey() (*KeyMaterial, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	km, err := KeyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return km, nil
}

// KeyFromMnemonic derives the wallet key at DerivationPath from a BIP-39 phrase (empty passphrase)
func KeyFromMnemonic(mnemonic string) (*KeyMaterial, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	defer clear(seed)

	extKey, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}
	for _, idx := range DerivationPath {
		extKey, err = extKey.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child key: %w", err)
		}
	}

	btcKey, err := extKey.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to extract private key: %w", err)
	}
	raw := btcKey.Serialize()
	defer clear(raw)

	// Re-read through go-ethereum so the key carries its secp256k1 curve
	key, err := ethcrypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid derived key: %w", err)
	}

	return &KeyMaterial{
		Address:    ethcrypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
		Mnemonic:   mnemonic,
	}, nil
}
