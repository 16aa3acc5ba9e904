package payment

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

const qrCodeSize = 256

// RenderQRCodeBase64 renders the PIX code as a base64 encoded PNG, without a
// data-URL prefix. Returns an error only when the payload cannot be encoded,
// callers degrade to an empty image instead of failing the order.
func RenderQRCodeBase64(code string) (string, error) {
	png, err := qrcode.Encode(code, qrcode.Medium, qrCodeSize)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
