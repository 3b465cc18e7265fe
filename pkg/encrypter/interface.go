package encrypter

// Encrypter provides symmetric encryption for short secrets (service keys).
// Implementations are safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// New creates an AES-GCM encrypter. The key must be 16, 24, or 32 bytes.
func New(key string) Encrypter {
	return &implEncrypter{key: key}
}
