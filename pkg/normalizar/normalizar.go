package normalizar

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removerDiacriticos descompone (NFD), elimina marcas combinantes y recompone (NFC).
var removerDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SinDiacriticos devuelve s sin tildes ni diéresis ("Pérez" -> "Perez", "Muñoz" -> "Munoz").
// Si la transformación falla devuelve la cadena original.
func SinDiacriticos(s string) string {
	out, _, err := transform.String(removerDiacriticos, s)
	if err != nil {
		return s
	}
	return out
}

// Handle deriva un handle de login a partir del primer nombre y el primer apellido:
// inicial del nombre + apellido, en minúsculas, sin diacríticos ni espacios
// ("José" + "Muñoz Díaz" -> "jmunozdiaz").
func Handle(primerNombre, primerApellido string) string {
	nombre := strings.TrimSpace(SinDiacriticos(primerNombre))
	apellido := strings.TrimSpace(SinDiacriticos(primerApellido))

	var b strings.Builder
	for _, r := range nombre {
		b.WriteRune(unicode.ToLower(r))
		break
	}
	for _, r := range apellido {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
