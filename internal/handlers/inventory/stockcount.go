package inventory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"

	"optistock_back_end/internal/inventory"
	"optistock_back_end/internal/store"
)

// UploadStockCount - Rapprocher un comptage physique de l'inventaire.
// Sans champ 'column', la réponse liste les colonnes candidates du fichier ;
// avec, elle contient le rapport matched / missing / unexpected. Rien n'est
// persisté côté inventaire.
func UploadStockCount(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun fichier reçu"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ouverture fichier"})
		return
	}
	defer file.Close()

	data := new(bytes.Buffer)
	if _, err := data.ReadFrom(file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture fichier"})
		return
	}

	scanned, err := store.ParseUpload(fileHeader.Filename, bytes.NewReader(data.Bytes()))
	if err != nil {
		var pe *store.ParseError
		if errors.As(err, &pe) {
			c.JSON(http.StatusBadRequest, gin.H{"error": pe.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture du comptage"})
		return
	}

	column := c.PostForm("column")
	if column == "" {
		// Premier passage : l'opérateur choisit la colonne des codes
		c.JSON(http.StatusOK, gin.H{
			"columns": inventory.BarcodeColumnCandidates(scanned.Columns),
			"message": "Sélectionnez la colonne contenant les codes-barres",
		})
		return
	}

	if !scanned.HasColumn(column) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Colonne '%s' absente du fichier", column)})
		return
	}

	table, ok := loadInventory(c)
	if !ok {
		return
	}

	report := inventory.Reconcile(table, scanned, column)

	// 🗄️ Archive du fichier brut (optionnelle)
	go archiveStockCount(fileHeader.Filename, data.Bytes())

	c.JSON(http.StatusOK, report)
}

// archiveStockCount conserve une copie du fichier de comptage dans MinIO
func archiveStockCount(filename string, data []byte) {
	if store.MinIO == nil {
		return
	}

	bucket := os.Getenv("MINIO_BUCKET")
	objectName := fmt.Sprintf("stockcounts/%d%s", time.Now().Unix(), filepath.Ext(filename))

	_, err := store.MinIO.PutObject(
		context.Background(),
		bucket,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"},
	)
	if err != nil {
		log.Printf("⚠️ Erreur archivage comptage dans MinIO: %v", err)
		return
	}
	log.Printf("🗄️ Comptage archivé: %s", objectName)
}
