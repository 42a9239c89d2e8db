package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"optistock_back_end/internal/config"
	"optistock_back_end/internal/handlers/inventory"
	"optistock_back_end/internal/routes"
	"optistock_back_end/internal/store"
)

func main() {
	config.Load()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}
	inventory.InitSessionStore(sessionSecret)

	store.Connect()

	if _, err := os.Stat(config.InventoryFile()); err != nil {
		log.Println("⚠️ Fichier d'inventaire absent:", config.InventoryFile())
	}

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterRoutes(r)

	port := config.Port()
	log.Println("🚀 Serveur OptiStock lancé sur le port", port)
	r.Run(":" + port)
}
