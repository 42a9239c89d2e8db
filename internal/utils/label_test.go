package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"entier", "120", "$120.00"},
		{"decimal", "99.9", "$99.90"},
		{"vide", "", "$0.00"},
		{"non numerique", "POA", "$POA.00"},
		{"espaces", " 45.5 ", "$45.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.in))
		})
	}
}

func TestGenerateBarcodePNG(t *testing.T) {
	data, err := GenerateBarcodePNG("1234")
	require.NoError(t, err)

	// Signature PNG
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestGenerateBarcodePNGEmpty(t *testing.T) {
	_, err := GenerateBarcodePNG("")
	assert.ErrorIs(t, err, ErrEmptyBarcode)
}

func TestBarcodeBase64DataURL(t *testing.T) {
	url, err := BarcodeBase64("1234")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}

func TestQRBase64(t *testing.T) {
	url, err := QRBase64("1234")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	_, err = QRBase64("")
	assert.ErrorIs(t, err, ErrEmptyBarcode)
}
