package inventory

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"optistock_back_end/internal/inventory"
)

// GenerateBarcode - Tirer un code-barres unique pour un nouveau produit
func GenerateBarcode(c *gin.Context) {
	table, ok := loadInventory(c)
	if !ok {
		return
	}

	barcode, err := inventory.GenerateUniqueBarcode(table)
	if err != nil {
		if errors.Is(err, inventory.ErrBarcodeSpaceExhausted) {
			c.JSON(http.StatusConflict, gin.H{"error": "Tous les codes-barres disponibles sont déjà attribués"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du code-barres"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"barcode": barcode})
}

// GenerateFramecode - Produire un code de monture unique.
// Avec ?supplier=..., le code suit la séquence du fournisseur ; sinon il est
// aléatoire (FRM + 8 hexadécimaux).
func GenerateFramecode(c *gin.Context) {
	table, ok := loadInventory(c)
	if !ok {
		return
	}

	supplier := c.Query("supplier")
	if supplier != "" {
		framecode, err := inventory.GenerateSupplierFramecode(table, supplier)
		if err != nil {
			renderWriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"framecode": framecode, "supplier": supplier})
		return
	}

	framecode, err := inventory.GenerateUniqueFramecode(table)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du code de monture"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"framecode": framecode})
}
