package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/never130/isidro-gourmet/pkg/textutil"
)

func TestNormalize_QuitaAcentosYBajaMayusculas(t *testing.T) {
	cases := map[string]string{
		"Azúcar":       "azucar",
		"JAMÓN":        "jamon",
		"Crème Brûlée": "creme brulee",
		"Ñoquis":       "noquis",
		"harina":       "harina",
		"":             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, textutil.Normalize(in), "Normalize(%q)", in)
	}
}
