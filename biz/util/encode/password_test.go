package encode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("supersecret")
	assert.NoError(t, err)
	assert.NotEqual(t, "supersecret", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	ok, err := h.Verify("supersecret", hash)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("supersecreT", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	h1, _ := h.Hash("password")
	h2, _ := h.Hash("password")
	assert.NotEqual(t, h1, h2)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	h := NewBcryptHasher(0)
	assert.Equal(t, DefaultCost, h.Cost())

	hash, err := h.Hash("password")
	assert.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestBcryptHasher_CostClamping(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(1).Cost())
	assert.Equal(t, bcrypt.MaxCost, NewBcryptHasher(100).Cost())
}

func TestBcryptHasher_TooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	_, err := h.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestBcryptHasher_VerifyInvalidHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	_, err := h.Verify("password", "not-a-hash")
	assert.Error(t, err)
}
