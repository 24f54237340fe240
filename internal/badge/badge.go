// Package badge turns badge IDs into printable QR symbols and scanned images
// back into badge payloads.
package badge

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/skip2/go-qrcode"

	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/model"
)

// DefaultSize is the badge side length in pixels, sized for A6 label
// printing.
const DefaultSize = 256

var ErrNoSymbol = errors.New("no qr symbol detected")

// EncodePNG renders the decimal badge ID as a QR PNG of size x size pixels.
func EncodePNG(id model.BadgeID, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(id.String(), qrcode.Medium, size)
}

// Decode extracts the badge payload from a still image (PNG or JPEG). The
// payload is returned as-is; whether it names a real roster member is the
// directory's call.
func Decode(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", err
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}

	result, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", errors.Join(ErrNoSymbol, err)
	}

	return result.GetText(), nil
}
