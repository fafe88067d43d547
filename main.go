package main

import (
	"fmt"
	"log"
	"os"

	"go-wastewatch/alerts"
	"go-wastewatch/catalog"
	"go-wastewatch/cronjobs"
	"go-wastewatch/db"
	"go-wastewatch/routes"
	"go-wastewatch/workflow"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// Situation summaries run only when an OpenAI key is configured.
	var openaiClient *openai.Client
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		openaiClient = openai.NewClient(apiKey)
		fmt.Println("OPENAI_API_KEY loaded")
	} else {
		fmt.Println("OPENAI_API_KEY not set; situation summaries disabled")
	}

	engineURL := os.Getenv("WORKFLOW_ENGINE_URL")
	fmt.Println("WORKFLOW_ENGINE_URL: ", engineURL)

	// Reference catalogs: built-in defaults plus an optional overlay file.
	cat := catalog.Default()
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		if err := cat.LoadFile(path); err != nil {
			log.Fatalf("Failed to load catalog overlay: %v", err)
		}
		fmt.Println("Catalog overlay loaded from", path)
	}

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	starter := workflow.NewHTTPStarter()
	dispatcher := alerts.NewDispatcher(alerts.DefaultSenders())

	// Initialize cron jobs
	cronjobs.InitCronJobs(firestoreClient, cat, dispatcher, openaiClient)

	r := routes.SetupRouter(cat, firestoreClient, starter, dispatcher)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
