package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const pngSize = 256

// Encode renders the scan code as a QR PNG and returns both the raw
// bytes (for the object store) and a data URI (embedded in the ticket
// payload so clients can render it without a second fetch).
func Encode(content string) (png []byte, dataURI string, err error) {
	if content == "" {
		return nil, "", fmt.Errorf("qr content is empty")
	}

	png, err = qrcode.Encode(content, qrcode.Medium, pngSize)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode qr code: %w", err)
	}

	dataURI = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

	return png, dataURI, nil
}
