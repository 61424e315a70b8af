package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptID(t *testing.T) {
	t.Setenv("ID_CIPHER_KEY", "unit-test-key")

	for _, id := range []uint{1, 42, 99999, 4294967295} {
		token, err := EncryptID(id)
		require.NoError(t, err)
		assert.NotContains(t, token, "/", "token must be URL-path safe")

		got, err := DecryptID(token)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestEncryptIDTokensDiffer(t *testing.T) {
	t.Setenv("ID_CIPHER_KEY", "unit-test-key")

	first, err := EncryptID(7)
	require.NoError(t, err)
	second, err := EncryptID(7)
	require.NoError(t, err)

	// Random nonce means the same ID never produces the same token twice
	assert.NotEqual(t, first, second)
}

func TestDecryptIDRejectsGarbage(t *testing.T) {
	t.Setenv("ID_CIPHER_KEY", "unit-test-key")

	_, err := DecryptID("not-a-valid-token")
	assert.ErrorIs(t, err, ErrInvalidEncryptedID)

	_, err = DecryptID("")
	assert.ErrorIs(t, err, ErrInvalidEncryptedID)

	// A valid token tampered with must fail authentication
	token, err := EncryptID(123)
	require.NoError(t, err)
	tampered := token[:len(token)-2] + "AA"
	if tampered == token {
		tampered = token[:len(token)-2] + "BB"
	}
	_, err = DecryptID(tampered)
	assert.Error(t, err)
}

func TestDecryptIDWrongKey(t *testing.T) {
	t.Setenv("ID_CIPHER_KEY", "first-key")
	token, err := EncryptID(55)
	require.NoError(t, err)

	t.Setenv("ID_CIPHER_KEY", "second-key")
	_, err = DecryptID(token)
	assert.ErrorIs(t, err, ErrInvalidEncryptedID)
}

func TestEncryptIDRequiresKey(t *testing.T) {
	t.Setenv("ID_CIPHER_KEY", "")

	_, err := EncryptID(1)
	assert.Error(t, err)
}
