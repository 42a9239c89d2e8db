package inventory

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"optistock_back_end/internal/cache"
	"optistock_back_end/internal/config"
	"optistock_back_end/internal/inventory"
	"optistock_back_end/internal/store"
)

// loadInventory charge l'inventaire principal et vérifie la présence des
// deux colonnes d'identifiants. Répond directement en cas d'échec.
func loadInventory(c *gin.Context) (*store.Table, bool) {
	table, err := store.Load(config.InventoryFile())
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fichier d'inventaire introuvable. Placez le classeur d'inventaire dans le dossier de données."})
			return nil, false
		}
		log.Printf("❌ Erreur lecture inventaire: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture du fichier d'inventaire"})
		return nil, false
	}

	if !table.HasColumn(inventory.BarcodeColumn) || !table.HasColumn(inventory.FramecodeColumn) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Colonnes 'BARCODE' ou 'FRAME NO.' absentes du fichier d'inventaire",
			"columns": table.Columns,
		})
		return nil, false
	}
	return table, true
}

// saveInventory persiste l'inventaire principal et invalide le cache
func saveInventory(c *gin.Context, table *store.Table) bool {
	if err := store.Save(config.InventoryFile(), table); err != nil {
		log.Printf("❌ Erreur sauvegarde inventaire: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde du fichier d'inventaire"})
		return false
	}
	cache.InvalidateInventoryCache()
	return true
}

// renderWriteError traduit une erreur de validation en réponse HTTP
func renderWriteError(c *gin.Context, err error) {
	if ve, ok := inventory.AsValidationError(err); ok {
		status := http.StatusBadRequest
		switch ve.Reason {
		case inventory.ReasonDuplicateBarcode, inventory.ReasonDuplicateFramecode:
			status = http.StatusConflict
		case inventory.ReasonBadRowIndex:
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": ve.Error(), "reason": ve.Reason, "fields": ve.Fields})
		return
	}
	log.Printf("❌ Erreur écriture inventaire: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
}

// GetInventory - Liste complète de l'inventaire principal
func GetInventory(c *gin.Context) {
	// ✅ Vérifie le cache Redis
	if cached, ok := cache.GetInventoryFromCache(); ok {
		c.JSON(http.StatusOK, gin.H{"columns": cached.Columns, "rows": cached.Rows, "total": len(cached.Rows)})
		return
	}

	table, ok := loadInventory(c)
	if !ok {
		return
	}

	// ✅ Met en cache
	cache.SetInventoryCache(table)

	c.JSON(http.StatusOK, gin.H{"columns": table.Columns, "rows": table.Rows, "total": len(table.Rows)})
}

// GetSmartDefaults - Valeurs de pré-remplissage du formulaire produit
func GetSmartDefaults(c *gin.Context) {
	table, ok := loadInventory(c)
	if !ok {
		return
	}

	defaults := gin.H{}
	for _, header := range inventory.FormColumns(table) {
		defaults[header] = inventory.SmartDefault(table, header)
	}
	c.JSON(http.StatusOK, gin.H{"defaults": defaults})
}

// AddProduct - Ajouter un produit à l'inventaire
func AddProduct(c *gin.Context) {
	var values map[string]string
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
		return
	}

	table, ok := loadInventory(c)
	if !ok {
		return
	}

	row, err := inventory.InsertRecord(table, values)
	if err != nil {
		renderWriteError(c, err)
		return
	}

	if !saveInventory(c, table) {
		return
	}

	log.Printf("✅ Produit ajouté: %s", inventory.CleanBarcode(row[inventory.BarcodeColumn]))
	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté avec succès",
		"product": row,
		"index":   len(table.Rows) - 1,
	})
}

// UpdateProduct - Modifier un produit en place (identifié par sa position)
func UpdateProduct(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Index de produit invalide"})
		return
	}

	var values map[string]string
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides: " + err.Error()})
		return
	}

	table, ok := loadInventory(c)
	if !ok {
		return
	}

	if err := inventory.UpdateRecord(table, index, values); err != nil {
		renderWriteError(c, err)
		return
	}

	if !saveInventory(c, table) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit mis à jour avec succès",
		"product": table.Rows[index],
	})
}

// QuickCheck - Contrôle rapide : scanner un code-barres, voir le produit
func QuickCheck(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"products": matches, "total": len(matches)})
}
