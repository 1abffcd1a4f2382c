package crypto

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/AlexZinkM/evm-wallet/internal/model"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/scrypt"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// keystoreProbe tells a native blob apart from a Web3 Secret Storage (v3) one
type keystoreProbe struct {
	Address string          `json:"address"`
	Crypto  json.RawMessage `json:"crypto"`
	CryptoU json.RawMessage `json:"Crypto"`
}

// DecryptKey opens a keystore blob with the password.
// Every failure is reported as ErrDecrypt, without saying which part did not match.
// Blobs in Web3 Secret Storage v3 format (as written by ethers or geth) are accepted too.
// password must be []byte for security (caller should zero it after use)
func DecryptKey(blob, password []byte) (*ecdsa.PrivateKey, error) {
	blob = bytes.TrimPrefix(blob, utf8BOM)

	var probe keystoreProbe
	if err := json.Unmarshal(blob, &probe); err != nil {
		return nil, ErrDecrypt
	}
	if len(probe.Crypto) > 0 || len(probe.CryptoU) > 0 {
		return decryptV3(blob, probe, password)
	}

	var keystoreFile model.KeystoreFile
	if err := json.Unmarshal(blob, &keystoreFile); err != nil {
		return nil, ErrDecrypt
	}
	if !validParams(keystoreFile) {
		return nil, ErrDecrypt
	}

	// Decode salt, nonce and ciphertext
	salt, err := base64.StdEncoding.DecodeString(keystoreFile.KDF.Salt)
	if err != nil {
		return nil, ErrDecrypt
	}
	nonce, err := base64.StdEncoding.DecodeString(keystoreFile.Nonce)
	if err != nil || len(nonce) != nonceLen {
		return nil, ErrDecrypt
	}
	ciphertext, err := base64.StdEncoding.DecodeString(keystoreFile.CipherText)
	if err != nil {
		return nil, ErrDecrypt
	}
	if !common.IsHexAddress(keystoreFile.Address) {
		return nil, ErrDecrypt
	}
	address := common.HexToAddress(keystoreFile.Address)

	// Derive key from password
	derived, err := scrypt.Key(password, salt, keystoreFile.KDF.N, keystoreFile.KDF.R, keystoreFile.KDF.P, keystoreFile.KDF.KeyLen)
	if err != nil {
		return nil, ErrDecrypt
	}
	defer clear(derived)

	aesGCM, err := newGCM(derived)
	if err != nil {
		return nil, ErrDecrypt
	}

	// GCM verifies the tag in constant time
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, address.Bytes())
	if err != nil {
		return nil, ErrDecrypt
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	// Deserialize wallet data
	var walletData model.WalletData
	if err := json.Unmarshal(plaintext, &walletData); err != nil {
		return nil, ErrDecrypt
	}
	defer clear(walletData.PrivateKey)

	key, err := ethcrypto.ToECDSA(walletData.PrivateKey)
	if err != nil {
		return nil, ErrDecrypt
	}
	if !sameAddress(ethcrypto.PubkeyToAddress(key.PublicKey), address) {
		zeroKey(key)
		return nil, ErrDecrypt
	}
	return key, nil
}

// ReadAddress reads only the address from a keystore blob (without decryption)
func ReadAddress(blob []byte) (common.Address, error) {
	blob = bytes.TrimPrefix(blob, utf8BOM)

	var probe keystoreProbe
	if err := json.Unmarshal(blob, &probe); err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrMalformedKeystore, err)
	}
	if !common.IsHexAddress(probe.Address) {
		return common.Address{}, fmt.Errorf("%w: missing address", ErrMalformedKeystore)
	}
	return common.HexToAddress(probe.Address), nil
}

func decryptV3(blob []byte, probe keystoreProbe, password []byte) (*ecdsa.PrivateKey, error) {
	raw := probe.Crypto
	if len(raw) == 0 {
		raw = probe.CryptoU
	}
	// Refuse cost parameters that would let a hostile blob exhaust memory
	var params struct {
		KDFParams struct {
			N int `json:"n"`
			R int `json:"r"`
			P int `json:"p"`
		} `json:"kdfparams"`
	}
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, ErrDecrypt
	}
	if params.KDFParams.N > maxScryptN || params.KDFParams.R > maxScryptR || params.KDFParams.P > maxScryptP {
		return nil, ErrDecrypt
	}

	key, err := keystore.DecryptKey(blob, string(password))
	if err != nil {
		return nil, ErrDecrypt
	}
	return key.PrivateKey, nil
}

func validParams(f model.KeystoreFile) bool {
	if f.Version != KeystoreVersion || f.Cipher != cipherAESGCM || f.KDF.Name != kdfScrypt {
		return false
	}
	n := f.KDF.N
	if n <= 1 || n > maxScryptN || n&(n-1) != 0 {
		return false
	}
	if f.KDF.R <= 0 || f.KDF.R > maxScryptR || f.KDF.P <= 0 || f.KDF.P > maxScryptP {
		return false
	}
	return f.KDF.KeyLen == scryptKeyLen
}

func sameAddress(a, b common.Address) bool {
	return subtle.ConstantTimeCompare(a.Bytes(), b.Bytes()) == 1
}
