// Package crypto provides at-rest encryption for stored health data.
package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
)

// Cipher encrypts and decrypts byte payloads with a symmetric key kept
// in a key file. The key file is created on first use with 0600
// permissions.
type Cipher struct {
	key [keySize]byte
}

// NewCipher loads the key from keyPath, generating and persisting a new
// key when the file does not exist yet.
func NewCipher(keyPath string) (*Cipher, error) {
	raw, err := os.ReadFile(keyPath)
	if errors.Is(err, os.ErrNotExist) {
		raw = make([]byte, keySize)
		if _, err := io.ReadFull(rand.Reader, raw); err != nil {
			return nil, fmt.Errorf("generate encryption key: %w", err)
		}
		if err := os.WriteFile(keyPath, raw, 0o600); err != nil {
			return nil, fmt.Errorf("write encryption key %s: %w", keyPath, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("read encryption key %s: %w", keyPath, err)
	}
	if len(raw) != keySize {
		return nil, fmt.Errorf("encryption key %s must be %d bytes, got %d", keyPath, keySize, len(raw))
	}

	c := &Cipher{}
	copy(c.key[:], raw)
	return c, nil
}

// Encrypt seals the plaintext with a random nonce. The nonce is
// prepended to the returned ciphertext.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, &c.key), nil
}

// Decrypt opens a ciphertext produced by Encrypt.
func (c *Cipher) Decrypt(data []byte) ([]byte, error) {
	if len(data) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}
	var nonce [nonceSize]byte
	copy(nonce[:], data[:nonceSize])
	plaintext, ok := secretbox.Open(nil, data[nonceSize:], &nonce, &c.key)
	if !ok {
		return nil, errors.New("decryption failed")
	}
	return plaintext, nil
}
