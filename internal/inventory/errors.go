package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// Erreurs de génération d'identifiants
var (
	// ErrBarcodeSpaceExhausted : tous les codes-barres de l'espace [1,11000]
	// sont déjà attribués
	ErrBarcodeSpaceExhausted = errors.New("espace de codes-barres épuisé")
)

// Raisons de rejet d'une écriture
const (
	ReasonMissingFields      = "missing_required_fields"
	ReasonDuplicateBarcode   = "duplicate_barcode"
	ReasonDuplicateFramecode = "duplicate_framecode"
	ReasonBadRowIndex        = "bad_row_index"
	ReasonBadSupplier        = "bad_supplier"
)

// ValidationError : écriture refusée, l'état du formulaire reste corrigeable
type ValidationError struct {
	Reason string
	Fields []string
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonMissingFields:
		return fmt.Sprintf("champs obligatoires manquants: %s", strings.Join(e.Fields, ", "))
	case ReasonDuplicateBarcode:
		return "ce code-barres existe déjà dans l'inventaire"
	case ReasonDuplicateFramecode:
		return "ce code de monture existe déjà dans l'inventaire"
	case ReasonBadRowIndex:
		return "index de produit invalide"
	case ReasonBadSupplier:
		return "nom de fournisseur trop court (3 caractères minimum)"
	default:
		return "données de produit invalides"
	}
}

// AsValidationError extrait une ValidationError d'une chaîne d'erreurs
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
