package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Business IDs are obfuscated before being placed in public URL paths so
// listing URLs do not expose sequential numeric IDs. This is presentation
// only; every handler still authorizes against the decrypted numeric ID.

var ErrInvalidEncryptedID = errors.New("invalid encrypted id")

func idCipherGCM() (cipher.AEAD, error) {
	secret := os.Getenv("ID_CIPHER_KEY")
	if secret == "" {
		return nil, errors.New("ID_CIPHER_KEY not configured")
	}
	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// EncryptID encrypts a numeric ID into a URL-safe token
func EncryptID(id uint) (string, error) {
	gcm, err := idCipherGCM()
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	plaintext := []byte(strconv.FormatUint(uint64(id), 10))
	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// DecryptID decrypts a token produced by EncryptID back into a numeric ID
func DecryptID(token string) (uint, error) {
	gcm, err := idCipherGCM()
	if err != nil {
		return 0, err
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidEncryptedID
	}
	if len(raw) < gcm.NonceSize() {
		return 0, ErrInvalidEncryptedID
	}
	nonce, sealed := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return 0, ErrInvalidEncryptedID
	}
	id, err := strconv.ParseUint(string(plaintext), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("decrypted id is not numeric: %w", err)
	}
	return uint(id), nil
}
