package encrypter

import "errors"

var (
	// ErrInvalidKeyLength is returned when the key is not a valid AES key size.
	ErrInvalidKeyLength = errors.New("encrypter: key must be 16, 24, or 32 bytes")
	// ErrCiphertextTooShort is returned when the ciphertext is shorter than a nonce.
	ErrCiphertextTooShort = errors.New("encrypter: ciphertext too short")
)
