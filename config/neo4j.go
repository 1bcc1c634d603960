package config

import (
	"context"
	"log"
	"os"
	"time"

	"Asteria/services/store"
)

// ConnectNeo4j builds the bolt executor from environment variables, with
// development fallbacks, and verifies connectivity before returning it.
func ConnectNeo4j() (*store.Executor, error) {
	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		uri = "bolt://localhost:7687"
	}
	username := os.Getenv("DB_USERNAME")
	if username == "" {
		username = "neo4j"
	}
	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		password = "password"
	}
	database := os.Getenv("NEO4J_DATABASE")
	if database == "" {
		database = "neo4j"
	}

	executor, err := store.NewExecutor(uri, username, password, database)
	if err != nil {
		log.Printf("Error creating Neo4j driver: %v", err)
		return nil, err
	}

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := executor.Verify(ctx); err != nil {
		log.Printf("Error pinging Neo4j: %v", err)
		return nil, err
	}

	log.Println("Successfully connected to Neo4j")
	return executor, nil
}
