package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyWebhookSignature(t *testing.T) {
	InitMidtrans("SB-Mid-server-testkey", false)

	orderID := "FEE-1a2b3c4d-TXNABC123"
	statusCode := "200"
	grossAmount := "45000.00"

	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + "SB-Mid-server-testkey"))
	valid := hex.EncodeToString(sum[:])

	assert.True(t, VerifyWebhookSignature(orderID, statusCode, grossAmount, valid))
	assert.False(t, VerifyWebhookSignature(orderID, statusCode, grossAmount, "forged"))
	assert.False(t, VerifyWebhookSignature(orderID, "201", grossAmount, valid))
	assert.False(t, VerifyWebhookSignature("FEE-other", statusCode, grossAmount, valid))
}
