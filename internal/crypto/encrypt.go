package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/AlexZinkM/evm-wallet/internal/model"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/scrypt"
)

const (
	// KeystoreVersion is written into every blob produced by EncryptKey
	KeystoreVersion = 1

	kdfScrypt    = "scrypt"
	cipherAESGCM = "aes-256-gcm"

	// scrypt parameters for local wallet
	// Security is prioritized over performance
	//
	// N=2^18 (~256MB RAM, 0.5-2s) - optimal balance:
	//   - Maximum security while remaining compatible with mobile devices
	//   - Brute-force attacks remain extremely expensive
	//
	// Note: N=2^20 (~1GB) offers the highest security but fails on mobile due to
	// Android memory limits per app (~256-512MB typically)
	scryptN      = 1 << 18
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12

	// upper bounds accepted when reading parameters back from a blob
	maxScryptN = 1 << 20
	maxScryptR = 16
	maxScryptP = 16
)

// Params are the scrypt cost parameters used for new keystores
type Params struct {
	N int
	R int
	P int
}

// StandardParams is used for every keystore written in production
var StandardParams = Params{N: scryptN, R: scryptR, P: scryptP}

// LightParams trade brute-force resistance for speed. Only for tests.
var LightParams = Params{N: 1 << 12, R: scryptR, P: scryptP}

// EncryptKey encrypts a private key into a self-describing keystore blob with StandardParams.
// password must be []byte for security (caller should zero it after use)
func EncryptKey(key *ecdsa.PrivateKey, password []byte) ([]byte, error) {
	return EncryptKeyWithParams(key, password, StandardParams)
}

// EncryptKeyWithParams encrypts a private key into a self-describing keystore blob
func EncryptKeyWithParams(key *ecdsa.PrivateKey, password []byte, params Params) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("nil private key")
	}

	// Generate salt and nonce
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Derive key from password
	derived, err := scrypt.Key(password, salt, params.N, params.R, params.P, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(derived)

	aesGCM, err := newGCM(derived)
	if err != nil {
		return nil, err
	}

	address := ethcrypto.PubkeyToAddress(key.PublicKey)

	walletData := &model.WalletData{
		PrivateKey: ethcrypto.FromECDSA(key),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	defer clear(walletData.PrivateKey)

	// Serialize wallet data
	plaintext, err := json.Marshal(walletData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet data: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	// Encrypt. The clear-text address is bound as additional data so it cannot be swapped.
	ciphertext := aesGCM.Seal(nil, nonce, plaintext, address.Bytes())

	keystoreFile := model.KeystoreFile{
		Version: KeystoreVersion,
		Address: address.Hex(),
		KDF: model.KDFParams{
			Name:   kdfScrypt,
			N:      params.N,
			R:      params.R,
			P:      params.P,
			KeyLen: scryptKeyLen,
			Salt:   base64.StdEncoding.EncodeToString(salt),
		},
		Cipher:     cipherAESGCM,
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
		CreatedAt:  walletData.CreatedAt,
	}

	blob, err := json.Marshal(keystoreFile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keystore: %w", err)
	}
	return blob, nil
}

// ReencryptKey opens a keystore with oldPassword and seals the same key under newPassword.
func ReencryptKey(blob, oldPassword, newPassword []byte, params Params) ([]byte, error) {
	key, err := DecryptKey(blob, oldPassword)
	if err != nil {
		return nil, err
	}
	defer zeroKey(key)

	return EncryptKeyWithParams(key, newPassword, params)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	// Create AES cipher
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	// Create GCM
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

func zeroKey(key *ecdsa.PrivateKey) {
	if key != nil && key.D != nil {
		key.D.SetInt64(0)
	}
}
