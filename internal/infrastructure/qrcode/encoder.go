// Package qrcode genera la imagen PNG del código QR del romaneio.
package qrcode

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/boombuler/barcode/qr"

	"github.com/jhoicas/Romaneio-api/internal/application/ports"
)

var (
	_ ports.CodeEncoder = (*Encoder)(nil)
	_ ports.CodeReader  = PassthroughReader{}
)

// Options parámetros visuales del código.
type Options struct {
	Size   int // lado en px
	Margin int // zona de silencio en módulos
	Level  qr.ErrorCorrectionLevel
	Dark   color.RGBA
	Light  color.RGBA
}

// DefaultOptions 256 px, margen de 2 módulos, corrección M, verde oscuro sobre blanco.
func DefaultOptions() Options {
	return Options{
		Size:   256,
		Margin: 2,
		Level:  qr.M,
		Dark:   color.RGBA{R: 0x1a, G: 0x5a, B: 0x3a, A: 0xff},
		Light:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// Encoder implementa ports.CodeEncoder con boombuler/barcode.
type Encoder struct {
	opts Options
}

// NewEncoder construye el encoder; size <= 0 conserva el tamaño por defecto.
func NewEncoder(size int) *Encoder {
	opts := DefaultOptions()
	if size > 0 {
		opts.Size = size
	}
	return &Encoder{opts: opts}
}

// Encode genera el PNG. Cada pixel se asigna al módulo que le corresponde, así el
// resultado mide exactamente Size x Size aunque no sea múltiplo del número de módulos.
func (e *Encoder) Encode(_ context.Context, payload string) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("qr: payload vacío")
	}
	code, err := qr.Encode(payload, e.opts.Level, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qr: codificar: %w", err)
	}

	modules := code.Bounds().Dx()
	total := modules + 2*e.opts.Margin
	if e.opts.Size < total {
		return nil, fmt.Errorf("qr: %d px no alcanzan para %d módulos", e.opts.Size, total)
	}

	img := image.NewRGBA(image.Rect(0, 0, e.opts.Size, e.opts.Size))
	for y := 0; y < e.opts.Size; y++ {
		my := y*total/e.opts.Size - e.opts.Margin
		for x := 0; x < e.opts.Size; x++ {
			mx := x*total/e.opts.Size - e.opts.Margin
			c := e.opts.Light
			if mx >= 0 && my >= 0 && mx < modules && my < modules && isDark(code.At(mx, my)) {
				c = e.opts.Dark
			}
			img.SetRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("qr: png: %w", err)
	}
	return buf.Bytes(), nil
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r+g+b < 3*0x8000
}

// PassthroughReader implementa ports.CodeReader cuando el cliente ya decodificó el código
// con la cámara y envía el texto: los bytes se interpretan como el payload.
type PassthroughReader struct{}

// Read devuelve ok=false si el contenido no parece un objeto JSON.
func (PassthroughReader) Read(_ context.Context, image []byte) (string, bool, error) {
	text := strings.TrimSpace(string(image))
	if !strings.HasPrefix(text, "{") {
		return "", false, nil
	}
	return text, true, nil
}
