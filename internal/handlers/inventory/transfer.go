package inventory

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"optistock_back_end/internal/config"
	"optistock_back_end/internal/inventory"
	"optistock_back_end/internal/store"
)

// loadSecondary charge l'inventaire secondaire, créé vide avec le schéma du
// principal s'il n'existe pas encore
func loadSecondary(c *gin.Context, main *store.Table) (*store.Table, bool) {
	secondary, err := store.EnsureWithSchema(config.SecondaryInventoryFile(), main.Columns)
	if err != nil {
		log.Printf("❌ Erreur inventaire secondaire: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture de l'inventaire secondaire"})
		return nil, false
	}
	return secondary, true
}

type transferRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}

// LookupTransfer - Chercher un code-barres scanné dans l'inventaire principal
func LookupTransfer(c *gin.Context) {
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
		c.JSON(http.StatusOK, gin.H{
			"found":   false,
			"message": "Produit absent de l'inventaire principal. Vous pouvez le signaler comme introuvable.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"found": true, "product": matches[0]})
}

// AddToSecondary - Déplacer un produit du principal vers le secondaire
func AddToSecondary(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'barcode' est requis"})
		return
	}

	main, ok := loadInventory(c)
	if !ok {
		return
	}

	matches := inventory.FindByBarcode(main, req.Barcode)
	if len(matches) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit absent de l'inventaire principal"})
		return
	}

	secondary, ok := loadSecondary(c, main)
	if !ok {
		return
	}

	if !inventory.AddToSecondary(secondary, matches[0], req.Barcode) {
		c.JSON(http.StatusOK, gin.H{
			"added":   false,
			"message": "Le produit existe déjà dans l'inventaire secondaire",
		})
		return
	}

	if err := store.Save(config.SecondaryInventoryFile(), secondary); err != nil {
		log.Printf("❌ Erreur sauvegarde inventaire secondaire: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde de l'inventaire secondaire"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": true, "message": "Produit ajouté à l'inventaire secondaire"})
}

// RemoveFromSecondary - Retirer toutes les lignes d'un code-barres du secondaire
func RemoveFromSecondary(c *gin.Context) {
	barcode := c.Query("barcode")
	if barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'barcode' manquant"})
		return
	}

	main, ok := loadInventory(c)
	if !ok {
		return
	}

	secondary, ok := loadSecondary(c, main)
	if !ok {
		return
	}

	removed := inventory.RemoveFromSecondary(secondary, barcode)
	if removed > 0 {
		if err := store.Save(config.SecondaryInventoryFile(), secondary); err != nil {
			log.Printf("❌ Erreur sauvegarde inventaire secondaire: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde de l'inventaire secondaire"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"removed": removed,
		"message": "Produit retiré de l'inventaire secondaire",
	})
}

// GetSecondary - Aperçu de l'inventaire secondaire
func GetSecondary(c *gin.Context) {
	main, ok := loadInventory(c)
	if !ok {
		return
	}

	secondary, ok := loadSecondary(c, main)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"columns": secondary.Columns, "rows": secondary.Rows, "total": len(secondary.Rows)})
}

// RecordUnfound - Signaler un code scanné absent de l'inventaire principal
func RecordUnfound(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'barcode' est requis"})
		return
	}

	records, err := store.LoadUnfound(config.UnfoundBarcodesFile())
	if err != nil {
		log.Printf("❌ Erreur lecture codes introuvables: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture des codes introuvables"})
		return
	}

	updated, added := inventory.RecordUnfound(records, req.Barcode)
	if !added {
		c.JSON(http.StatusOK, gin.H{"added": false, "message": "Code déjà signalé comme introuvable"})
		return
	}

	if err := store.SaveUnfound(config.UnfoundBarcodesFile(), updated); err != nil {
		log.Printf("❌ Erreur sauvegarde codes introuvables: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde des codes introuvables"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": true, "message": "Code signalé comme introuvable", "total": len(updated)})
}

// GetUnfound - Lister les codes introuvables
func GetUnfound(c *gin.Context) {
	records, err := store.LoadUnfound(config.UnfoundBarcodesFile())
	if err != nil {
		log.Printf("❌ Erreur lecture codes introuvables: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture des codes introuvables"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unfound": records, "total": len(records)})
}

// ExportUnfound - Télécharger la table des introuvables en classeur xlsx
func ExportUnfound(c *gin.Context) {
	records, err := store.LoadUnfound(config.UnfoundBarcodesFile())
	if err != nil {
		log.Printf("❌ Erreur lecture codes introuvables: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture des codes introuvables"})
		return
	}

	table := store.NewTable([]string{inventory.BarcodeColumn, inventory.TimestampColumn})
	for _, rec := range records {
		table.Append(store.Row{
			inventory.BarcodeColumn:   rec.Barcode,
			inventory.TimestampColumn: rec.Timestamp,
		})
	}

	data, err := store.WriteWorkbook(table)
	if err != nil {
		log.Printf("❌ Erreur export codes introuvables: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur export des codes introuvables"})
		return
	}

	filename := fmt.Sprintf("unfound_barcodes_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
