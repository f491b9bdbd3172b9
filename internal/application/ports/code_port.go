package ports

import "context"

// CodeEncoder convierte el payload textual de un romaneio en una imagen (PNG).
// La implementación fija el nivel de corrección, tamaño y colores.
type CodeEncoder interface {
	Encode(ctx context.Context, payload string) ([]byte, error)
}

// CodeReader extrae el texto de una imagen capturada por la cámara.
// ok=false cuando la imagen no contiene un código legible (no es un error).
type CodeReader interface {
	Read(ctx context.Context, image []byte) (payload string, ok bool, err error)
}
