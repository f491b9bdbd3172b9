// Package carrier normaliza los datos del transportista que se capturan en campo
// (placa del vehículo y documento del conductor).
package carrier

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizePlate deja la placa en mayúsculas, sin acentos ni separadores.
// El formato antiguo (3 letras + 4 dígitos) se devuelve como "ABC-1234";
// el formato Mercosul ("ABC1D23") queda compacto.
func NormalizePlate(raw string) string {
	// transform.Chain y cases.Caser guardan estado: uno por llamada.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, strings.TrimSpace(raw))
	if err != nil {
		folded = raw
	}
	upper := cases.Upper(language.Und).String(folded)

	var b strings.Builder
	for _, r := range upper {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if isLegacyPlate(cleaned) {
		return cleaned[:3] + "-" + cleaned[3:]
	}
	return cleaned
}

func isLegacyPlate(s string) bool {
	if len(s) != 7 {
		return false
	}
	for i := 0; i < 3; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	for i := 3; i < 7; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
