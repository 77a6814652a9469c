// Package cipher encrypts and decrypts profile secrets.
//
// Values are sealed with AES-256-GCM under a caller supplied key. Keys and
// ciphertext travel as standard base64 strings so they can live in YAML
// profiles and environment variables:
//
//	blob = base64(nonce || ciphertext)
//
// where nonce is 12 random bytes. There is no key derivation or key storage;
// the raw 32-byte key is supplied out of band (see GenerateKey).
package cipher
