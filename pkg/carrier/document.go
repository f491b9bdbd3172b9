package carrier

import (
	"strings"
	"unicode"
)

// FormatDocument formatea un CPF de 11 dígitos como "000.000.000-00".
// Cualquier otro documento se devuelve recortado y sin cambios.
func FormatDocument(raw string) string {
	trimmed := strings.TrimSpace(raw)
	digits := extractDigits(trimmed)
	if len(digits) != 11 || len(digits) != countAlnum(trimmed) {
		return trimmed
	}
	d := string(digits)
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}

func countAlnum(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
