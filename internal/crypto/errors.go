package crypto

import "errors"

// ErrGeneration signals that fresh key material could not be produced (entropy source failure)
var ErrGeneration = errors.New("key generation failed")

// ErrDecrypt signals that a keystore could not be opened with the given password.
// Wrong password, corrupted blob and unknown format are deliberately indistinguishable.
var ErrDecrypt = errors.New("could not decrypt key with given password")

// ErrMalformedKeystore signals that a keystore blob cannot be parsed
var ErrMalformedKeystore = errors.New("malformed keystore")

// ErrInvalidMnemonic signals that a recovery phrase failed the BIP-39 checksum
var ErrInvalidMnemonic = errors.New("invalid mnemonic")
