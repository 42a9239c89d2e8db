package inventory

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"optistock_back_end/internal/inventory"
)

// RequestDelete - Marquer un produit comme à supprimer. Rien n'est retiré
// tant que la confirmation n'est pas arrivée.
func RequestDelete(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Index de produit invalide"})
		return
	}

	table, ok := loadInventory(c)
	if !ok {
		return
	}

	if index < 0 || index >= len(table.Rows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	if err := setPendingDelete(c, index); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur session"})
		return
	}

	row := table.Rows[index]
	c.JSON(http.StatusOK, gin.H{
		"message":   "Suppression en attente de confirmation",
		"barcode":   inventory.CleanBarcode(row[inventory.BarcodeColumn]),
		"framecode": inventory.CleanBarcode(row[inventory.FramecodeColumn]),
		"index":     index,
	})
}

// ConfirmDelete - Confirmer la suppression en attente
func ConfirmDelete(c *gin.Context) {
	index := pendingDeleteIndex(c)
	if index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucune suppression en attente"})
		return
	}

	table, ok := loadInventory(c)
	if !ok {
		return
	}

	if err := inventory.DeleteRecord(table, index); err != nil {
		renderWriteError(c, err)
		return
	}

	if !saveInventory(c, table) {
		return
	}

	if err := clearPendingDelete(c); err != nil {
		log.Printf("⚠️ Erreur nettoyage session: %v", err)
	}

	log.Printf("✅ Produit supprimé (index %d)", index)
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé avec succès", "total": len(table.Rows)})
}

// CancelDelete - Annuler la suppression en attente, la table reste intacte
func CancelDelete(c *gin.Context) {
	if err := clearPendingDelete(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Suppression annulée"})
}
