package utils

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateTrackingQR encode une URL de suivi en QR PNG, retourné en data
// URI prêt à embarquer dans un email.
func GenerateTrackingQR(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, 280)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
