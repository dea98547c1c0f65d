package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devuelve s en minúsculas y sin acentos ("Azúcar" -> "azucar").
// Se usa para búsquedas insensibles a acentos sobre nombres en español.
func Normalize(s string) string {
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
