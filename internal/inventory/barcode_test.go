package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanBarcode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"valeur simple", "123", "123"},
		{"espaces de bord", "  123  ", "123"},
		{"artefact flottant", "123.0", "123"},
		{"deux decimales conservees", "123.00", "123.00"},
		{"fraction non nulle conservee", "123.5", "123.5"},
		{"espace de largeur nulle", "12\u200b3", "123"},
		{"espace insecable", "12\u00a03", "123"},
		{"vide", "", ""},
		{"point seul", "100.", "100."},
		{"alphanumerique", " FRM1A2B3C4D ", "FRM1A2B3C4D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanBarcode(tt.in))
		})
	}
}

func TestCleanBarcodeIdempotent(t *testing.T) {
	inputs := []string{"123", " 123.0 ", "FRM00FF00FF", "12\u200b3.0", "", "1.00", "0.5"}
	for _, in := range inputs {
		once := CleanBarcode(in)
		assert.Equal(t, once, CleanBarcode(once), "CleanBarcode doit être idempotent pour %q", in)
	}
}

func TestCleanBarcodeEquivalence(t *testing.T) {
	assert.Equal(t, "123", CleanBarcode("123.0"))
	assert.Equal(t, CleanBarcode("123"), CleanBarcode("123.0"))
}
