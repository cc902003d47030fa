package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/shopspring/decimal"
)

var SnapClient snap.Client

var midtransServerKey string

// InitMidtrans must be called during app bootstrap.
func InitMidtrans(serverKey string, useProduction bool) {
	midtransServerKey = serverKey
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type PayerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// GenerateSnapToken opens an online payment session for a fee installment.
// orderID doubles as the gateway order id and must be unique per attempt.
func GenerateSnapToken(orderID string, amount decimal.Decimal, description string, payer PayerInput) (string, string, error) {
	if !amount.IsPositive() {
		return "", "", errors.New("invalid payment amount")
	}
	if orderID == "" {
		return "", "", errors.New("order id is required")
	}

	gross := amount.Round(0).IntPart()
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payer.FirstName,
			LName: payer.LastName,
			Email: payer.Email,
			Phone: payer.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       orderID,
				Price:    gross,
				Qty:      1,
				Name:     defaultString(description, "Semester Fee Payment"),
				Category: "FEES",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

// VerifyWebhookSignature checks the sha512 signature midtrans sends with
// every payment notification.
func VerifyWebhookSignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + midtransServerKey))
	return hex.EncodeToString(sum[:]) == signatureKey
}

func defaultString(s string, def string) string {
	if s == "" {
		return def
	}
	return s
}
