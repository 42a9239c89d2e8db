package inventory

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"optistock_back_end/internal/inventory"
	"optistock_back_end/internal/models"
	"optistock_back_end/internal/utils"
)

// GetLabel - Contenu d'une étiquette imprimable pour un produit.
// Un échec de génération d'image n'empêche pas le reste de l'étiquette.
func GetLabel(c *gin.Context) {
	barcode := c.Query("barcode")
	if barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'barcode' manquant"})
		return
	}

	table, ok := loadInventory(c)
	if !ok {
		return
	}

	matches := inventory.FindByBarcode(table, barcode)
	if len(matches) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Code-barres introuvable dans l'inventaire"})
		return
	}

	product := matches[0]
	cleaned := inventory.CleanBarcode(product[inventory.BarcodeColumn])

	payload := models.LabelPayload{
		Barcode:      cleaned,
		Price:        utils.FormatPrice(product["RRP"]),
		TaxNote:      "Inc GST",
		Framecode:    product[inventory.FramecodeColumn],
		Model:        product["MODEL"],
		Manufacturer: product["MANUFACTURER"],
		FrameColour:  product["F COLOUR"],
		Size:         product["SIZE"],
	}

	if img, err := utils.BarcodeBase64(cleaned); err != nil {
		log.Printf("⚠️ Erreur génération image code-barres: %v", err)
	} else {
		payload.BarcodeImage = img
	}

	if qr, err := utils.QRBase64(cleaned); err != nil {
		log.Printf("⚠️ Erreur génération QR: %v", err)
	} else {
		payload.QRImage = qr
	}

	c.JSON(http.StatusOK, gin.H{"label": payload})
}
