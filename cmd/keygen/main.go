package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/marcvaillant/checklist-api-go/pkg/auth"
)

func main() {
	// Load .env from project root
	_ = godotenv.Load("../.env")

	if len(os.Args) < 2 {
		fmt.Println("Usage: keygen <clientID>")
		os.Exit(1)
	}

	clientID := os.Args[1]
	if os.Getenv("API_MASTER_SECRET") == "" {
		fmt.Println("Error: API_MASTER_SECRET not found in .env")
		os.Exit(1)
	}

	apiKey := auth.GenerateHMACKey(clientID)
	fmt.Printf("Generated Key for %s:\n%s\n", clientID, apiKey)
}
