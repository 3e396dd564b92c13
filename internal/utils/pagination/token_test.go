package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	paymentDate := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 8, 31, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(paymentDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedPaymentDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, paymentDate, decodedPaymentDate, "Payment date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")

	// Zero time values
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, zeroTime)
	decodedZeroDate, decodedZeroTime, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, decodedZeroDate, "Zero date should match after decode")
	assert.Equal(t, zeroTime, decodedZeroTime, "Zero time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Missing separator
	_, _, err = DecodeToken("bm8gc2VwYXJhdG9yIGhlcmU=")
	assert.Error(t, err, "Should return an error when the separator is missing")
}
