package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"strconv"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/skip2/go-qrcode"
)

// ErrEmptyBarcode : impossible d'encoder une étiquette sans code
var ErrEmptyBarcode = errors.New("le code-barres ne peut pas être vide")

// Dimensions de l'image Code 128 sur l'étiquette
const (
	barcodeWidth  = 440
	barcodeHeight = 120
)

// GenerateBarcodePNG encode un code-barres Code 128 en PNG
func GenerateBarcodePNG(code string) ([]byte, error) {
	if code == "" {
		return nil, ErrEmptyBarcode
	}

	encoded, err := code128.Encode(code)
	if err != nil {
		return nil, fmt.Errorf("erreur génération du code-barres: %w", err)
	}

	scaled, err := barcode.Scale(encoded, barcodeWidth, barcodeHeight)
	if err != nil {
		return nil, fmt.Errorf("erreur mise à l'échelle du code-barres: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("erreur encodage PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// BarcodeBase64 retourne l'image Code 128 en data-URL prête pour <img src="...">
func BarcodeBase64(code string) (string, error) {
	data, err := GenerateBarcodePNG(code)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// QRBase64 encode le même code en QR (scan au téléphone) en data-URL
func QRBase64(code string) (string, error) {
	if code == "" {
		return "", ErrEmptyBarcode
	}
	data, err := qrcode.Encode(code, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("erreur génération du QR: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// FormatPrice met en forme le prix affiché sur l'étiquette : deux décimales
// quand la valeur est numérique, sinon la valeur brute suffixée ".00"
func FormatPrice(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		s = "0"
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return fmt.Sprintf("$%.2f", v)
	}
	return fmt.Sprintf("$%s.00", s)
}
