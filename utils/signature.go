package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/png"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

const (
	maxSignatureWidth  = 800
	maxSignatureHeight = 600
	signatureQuality   = 85

	signatureDir = "./uploads/firmas"
)

// SignatureImage is a normalized signature ready for storage: JPEG bytes
// under a randomized filename.
type SignatureImage struct {
	Name string
	Data []byte
}

// SignatureFromDataURI converts a client-captured data-URI signature into a
// bounded JPEG. It returns nil for anything that is not a usable image:
// missing input, a non-image data URI, malformed base64, or an undecodable
// payload. A broken signature must never block saving the round it belongs
// to, so decode failures are logged and swallowed.
func SignatureFromDataURI(s string) *SignatureImage {
	if !strings.HasPrefix(s, "data:image") {
		return nil
	}
	idx := strings.Index(s, ";base64,")
	if idx < 0 {
		return nil
	}

	raw, err := base64.StdEncoding.DecodeString(s[idx+len(";base64,"):])
	if err != nil {
		log.Printf("firma: base64 inválido: %v", err)
		return nil
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Printf("firma: imagen ilegible: %v", err)
		return nil
	}

	img := flattenOnWhite(src)
	img = fitWithin(img, maxSignatureWidth, maxSignatureHeight)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: signatureQuality}); err != nil {
		log.Printf("firma: no se pudo recodificar: %v", err)
		return nil
	}

	// 8 hex chars = 32 bits of randomness per name.
	name := fmt.Sprintf("firma_%s.jpg", uuid.New().String()[:8])
	return &SignatureImage{Name: name, Data: buf.Bytes()}
}

// SaveSignature writes the image under the local uploads directory and
// returns the public URL path.
func SaveSignature(sig *SignatureImage) (string, error) {
	if err := os.MkdirAll(signatureDir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(signatureDir, sig.Name), sig.Data, 0644); err != nil {
		return "", err
	}
	return "/uploads/firmas/" + sig.Name, nil
}

// StoreSignatureDataURI runs the codec and persists the result, returning
// the stored URL or "" when there is no usable image. Never fails the
// caller; storage errors are logged.
func StoreSignatureDataURI(dataURI string) string {
	sig := SignatureFromDataURI(dataURI)
	if sig == nil {
		return ""
	}
	url, err := SaveSignature(sig)
	if err != nil {
		log.Printf("firma: no se pudo guardar %s: %v", sig.Name, err)
		return ""
	}
	return url
}

// flattenOnWhite composites the image onto an opaque white background so
// transparent PNG strokes survive the JPEG re-encode.
func flattenOnWhite(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)
	return dst
}

// fitWithin downscales to fit maxW×maxH preserving aspect ratio. Images
// already inside the bounds pass through untouched.
func fitWithin(img *image.RGBA, maxW, maxH int) *image.RGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w <= maxW && h <= maxH {
		return img
	}

	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
