package inventory

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"optistock_back_end/internal/store"
)

const (
	// Espace des codes-barres aléatoires
	barcodeSpaceMin = 1
	barcodeSpaceMax = 11000

	// Budget de tirages avant d'abandonner. L'espace dépasse largement le
	// stock attendu d'une boutique, mais il est fini : on refuse de boucler
	// sans fin quand il se remplit.
	maxGenerateAttempts = 100000
)

// GenerateUniqueBarcode tire un code-barres aléatoire dans [1,11000] absent
// de la table (comparaison après normalisation). Retourne
// ErrBarcodeSpaceExhausted si tous les codes de l'espace sont pris.
func GenerateUniqueBarcode(t *store.Table) (string, error) {
	existing := cleanedSet(t.Column(BarcodeColumn))

	occupied := 0
	for v := range existing {
		if n, err := strconv.Atoi(v); err == nil && n >= barcodeSpaceMin && n <= barcodeSpaceMax {
			occupied++
		}
	}
	if occupied >= barcodeSpaceMax-barcodeSpaceMin+1 {
		return "", ErrBarcodeSpaceExhausted
	}

	for i := 0; i < maxGenerateAttempts; i++ {
		candidate := strconv.Itoa(barcodeSpaceMin + rand.Intn(barcodeSpaceMax-barcodeSpaceMin+1))
		if !existing[CleanBarcode(candidate)] {
			return candidate, nil
		}
	}
	return "", ErrBarcodeSpaceExhausted
}

// GenerateUniqueFramecode produit un code de monture aléatoire
// "FRM" + 8 caractères hexadécimaux majuscules, unique dans la table
func GenerateUniqueFramecode(t *store.Table) (string, error) {
	existing := cleanedSet(t.Column(FramecodeColumn))

	for i := 0; i < maxGenerateAttempts; i++ {
		u := uuid.New()
		hex := fmt.Sprintf("%x", u[:])
		candidate := "FRM" + strings.ToUpper(hex[len(hex)-8:])
		if !existing[CleanBarcode(candidate)] {
			return candidate, nil
		}
	}
	return "", ErrBarcodeSpaceExhausted
}

var supplierSuffixPattern = regexp.MustCompile(`^(\d{6})$`)

// GenerateSupplierFramecode produit le prochain code de monture séquencé par
// fournisseur : préfixe = 3 premières lettres du fournisseur en majuscules,
// suffixe = plus grand numéro à 6 chiffres existant pour ce préfixe + 1
// (000001 pour un préfixe encore vierge). Les étiquettes imprimées dépendent
// de ce format exact.
func GenerateSupplierFramecode(t *store.Table, supplier string) (string, error) {
	name := []rune(strings.TrimSpace(supplier))
	if len(name) < 3 {
		return "", &ValidationError{Reason: ReasonBadSupplier}
	}
	prefix := strings.ToUpper(string(name[:3]))

	maxSeq := 0
	for _, raw := range t.Column(FramecodeColumn) {
		code := CleanBarcode(raw)
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		m := supplierSuffixPattern.FindStringSubmatch(code[len(prefix):])
		if m == nil {
			continue
		}
		if seq, err := strconv.Atoi(m[1]); err == nil && seq > maxSeq {
			maxSeq = seq
		}
	}

	return fmt.Sprintf("%s%06d", prefix, maxSeq+1), nil
}
