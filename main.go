package main

import (
	"Asteria/config"
	_ "Asteria/docs"
	"Asteria/middleware"
	"Asteria/routes"
	"Asteria/services/store"
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Asteria API
// @version 1.0
// @description Gin-Gonic server for the Asteria score tracking API
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	executor, err := config.ConnectNeo4j()
	if err != nil {
		log.Fatalf("Error connecting to Neo4j: %v", err)
	}
	defer executor.Close(context.Background())

	graphStore := store.NewGraphStore(executor)

	if err := graphStore.EnsureConstraints(context.Background()); err != nil {
		log.Printf("Warning: constraint setup failed: %v", err)
		// Continue execution even if constraint setup fails
	}

	// Only seed in development or during deployment
	if os.Getenv("SEED_NEO4J") == "true" {
		log.Println("Seeding Neo4j database...")
		if err := graphStore.Seed(context.Background()); err != nil {
			log.Printf("Warning: database seeding failed: %v", err)
		} else {
			log.Println("Database seeded successfully")
		}
	}

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	routes.SetupRoutes(r, graphStore)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
