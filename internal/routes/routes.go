package routes

import (
	"github.com/gin-gonic/gin"

	"optistock_back_end/internal/handlers/inventory"
	"optistock_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// Inventaire principal
	api.GET("/inventory", inventory.GetInventory)
	api.GET("/inventory/defaults", inventory.GetSmartDefaults)

	// Produits
	api.POST("/products", inventory.AddProduct)
	api.PUT("/products/:index", inventory.UpdateProduct)
	api.POST("/products/:index/delete", inventory.RequestDelete)
	api.POST("/products/delete/confirm", inventory.ConfirmDelete)
	api.POST("/products/delete/cancel", inventory.CancelDelete)
	api.GET("/products/lookup", inventory.QuickCheck)

	// Génération d'identifiants
	api.POST("/barcodes/generate", inventory.GenerateBarcode)
	api.POST("/framecodes/generate", inventory.GenerateFramecode)

	// Étiquettes
	api.GET("/labels", inventory.GetLabel)

	// Comptage physique
	api.POST("/stockcount", inventory.UploadStockCount)

	// Transfert vers l'inventaire secondaire
	api.GET("/transfer/lookup", inventory.LookupTransfer)
	api.GET("/transfer/secondary", inventory.GetSecondary)
	api.POST("/transfer/secondary", inventory.AddToSecondary)
	api.DELETE("/transfer/secondary", inventory.RemoveFromSecondary)

	// Codes introuvables
	api.GET("/unfound", inventory.GetUnfound)
	api.POST("/unfound", inventory.RecordUnfound)
	api.GET("/unfound/export", inventory.ExportUnfound)
}
