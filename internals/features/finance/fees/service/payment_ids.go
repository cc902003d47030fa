package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"campushub_backend/internals/features/finance/fees/model"
)

const randomSuffixChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateTransactionID builds an id like TXN<base36 timestamp><6 random
// chars>, both segments upper-cased.
func GenerateTransactionID() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	suffix := make([]byte, 6)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(randomSuffixChars))))
		if err != nil {
			suffix[i] = randomSuffixChars[0]
			continue
		}
		suffix[i] = randomSuffixChars[n.Int64()]
	}
	return "TXN" + ts + string(suffix)
}

// GenerateReceiptNumber issues RCP<year><6-digit sequence>, with the sequence
// counting receipts within the calendar year.
func GenerateReceiptNumber(db *gorm.DB) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("RCP%d", year)

	var count int64
	err := db.Model(&model.PaymentModel{}).
		Where("receipt_number LIKE ?", prefix+"%").
		Count(&count).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%06d", prefix, count+1), nil
}
