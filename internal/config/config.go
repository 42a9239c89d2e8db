package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// getEnv retourne la variable d'environnement ou la valeur par défaut
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InventoryFile retourne le chemin du fichier d'inventaire principal
func InventoryFile() string {
	return getEnv("INVENTORY_FILE", "data/inventory.xlsx")
}

// SecondaryInventoryFile retourne le chemin de l'inventaire secondaire
func SecondaryInventoryFile() string {
	return getEnv("SECONDARY_INVENTORY_FILE", "data/secondary_inventory.xlsx")
}

// UnfoundBarcodesFile retourne le chemin de la table des codes introuvables
func UnfoundBarcodesFile() string {
	return getEnv("UNFOUND_BARCODES_FILE", "data/unfound_barcodes.csv")
}

func Port() string {
	return getEnv("PORT", "8080")
}
