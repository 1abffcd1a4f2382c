package model

// KeystoreFile represents the encrypted keystore blob kept in the local slot and the remote backup
type KeystoreFile struct {
	Version    int       `json:"version"`
	Address    string    `json:"address"`
	KDF        KDFParams `json:"kdf"`
	Cipher     string    `json:"cipher"`
	Nonce      string    `json:"nonce"`
	CipherText string    `json:"cipherText"` // AES-GCM output, tag included
	CreatedAt  string    `json:"createdAt"`
}

// KDFParams holds everything needed to re-derive the symmetric key from a password
type KDFParams struct {
	Name   string `json:"name"` // "scrypt"
	N      int    `json:"n"`
	R      int    `json:"r"`
	P      int    `json:"p"`
	KeyLen int    `json:"keyLen"`
	Salt   string `json:"salt"`
}

// WalletData represents decrypted wallet data
type WalletData struct {
	PrivateKey []byte `json:"privateKey"` // 32 bytes secp256k1 scalar (stored as base64 in JSON)
	CreatedAt  string `json:"createdAt"`
}
