package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	txnDate := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(txnDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, txnDate, decodedDate, "Transaction date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")

	// Zero times should round-trip too.
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, zeroTime)
	decodedZeroDate, decodedZeroTime, err := DecodeToken(zeroToken)
	assert.NoError(t, err)
	assert.Equal(t, zeroTime, decodedZeroDate)
	assert.Equal(t, zeroTime, decodedZeroTime)
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Valid base64 but no separator.
	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo="
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split")
}
