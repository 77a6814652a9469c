package cipher

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/dotrs/dotrs/pkg/errors"
)

const (
	// KeySize is the decoded key length for AES-256
	KeySize = 32

	// NonceSize is the GCM standard nonce length
	NonceSize = 12

	// EncryptedMarker is the reserved key of an encrypted profile value
	EncryptedMarker = "$encrypted"
)

// Encrypt seals plaintext under the base64 key and returns base64(nonce||ciphertext)
func Encrypt(plaintext, key string) (string, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, errors.ErrEncrypt, "failed to generate nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a blob produced by Encrypt. The plaintext must be valid UTF-8.
func Decrypt(blob, key string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrBase64Decode, "failed decoding encrypted value")
	}
	if len(data) < NonceSize {
		return "", errors.Newf(errors.ErrInvalidCipheredDataLength,
			"encrypted data has an invalid length: %d bytes", len(data)).
			WithDetail("length", len(data))
	}

	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	nonce, ciphertext := data[:NonceSize], data[NonceSize:]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrDecrypt, "decryption failed")
	}

	if !utf8.Valid(plain) {
		return "", errors.New(errors.ErrUtf8Encode, "decrypted value is not valid UTF-8")
	}
	return string(plain), nil
}

// GenerateKey returns a new random key, base64 encoded
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to generate key")
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// EncryptedValue renders blob as the profile snippet that decodes to an
// encrypted leaf
func EncryptedValue(blob string) string {
	return fmt.Sprintf("%s: %s", EncryptedMarker, blob)
}

func newAEAD(key string) (stdcipher.AEAD, error) {
	keyBytes, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrBase64Decode, "failed decoding key")
	}
	if len(keyBytes) != KeySize {
		return nil, errors.Newf(errors.ErrInvalidKey,
			"key must decode to %d bytes, got %d", KeySize, len(keyBytes))
	}

	block, err := aes.NewCipher(keyBytes)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidKey, "failed to create cipher")
	}
	aead, err := stdcipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to create GCM")
	}
	return aead, nil
}
