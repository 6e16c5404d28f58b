package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	MaxWidth       = 1600
	DefaultQuality = 80
	ContentType    = "image/webp"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Allowed reports whether the upload content type is accepted.
func Allowed(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png":
		return true
	}
	return false
}

// NormalizeToWebP decodes a JPEG or PNG, scales it down to MaxWidth when
// wider and re-encodes it as WebP.
func NormalizeToWebP(r io.Reader, quality float32) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var src image.Image
	switch http.DetectContentType(raw) {
	case "image/jpeg":
		src, err = jpeg.Decode(bytes.NewReader(raw))
	case "image/png":
		src, err = png.Decode(bytes.NewReader(raw))
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	img := resize(src, MaxWidth)

	if quality <= 0 {
		quality = DefaultQuality
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func resize(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
