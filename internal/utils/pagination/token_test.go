package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(createdAt, "2b7e1516-28ae-4d2a-a6d2-8a1f5c7e1d3b")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedCreatedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, createdAt, decodedCreatedAt)
	assert.Equal(t, "2b7e1516-28ae-4d2a-a6d2-8a1f5c7e1d3b", decodedID)

	// Non-UTC input comes back as the same instant.
	local := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("IST", 5*3600+1800))
	decodedLocal, _, err := DecodeToken(EncodeToken(local, "x"))
	assert.NoError(t, err)
	assert.True(t, local.Equal(decodedLocal))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	missingSep := base64.URLEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z"))
	_, _, err = DecodeToken(missingSep)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|abc"))
	_, _, err = DecodeToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 20, ClampLimit(0, 20, 100))
	assert.Equal(t, 20, ClampLimit(-3, 20, 100))
	assert.Equal(t, 5, ClampLimit(5, 20, 100))
	assert.Equal(t, 100, ClampLimit(500, 20, 100))
}
