// One-shot setup utility: hashes and inserts the fixed employee records into
// the employees collection. Run once against a fresh database.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kylefourie/swiftpay-gobackend/internal/auth"
	"github.com/kylefourie/swiftpay-gobackend/internal/db"
	"github.com/kylefourie/swiftpay-gobackend/internal/models"
)

var employees = []struct {
	fullName      string
	accountNumber string
	password      string
}{
	{"John Doe", "12345", "Employee1Pass#"},
	{"Jane Smith", "67890", "Employee2Pass#"},
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env: %s", err)
	}

	uri := os.Getenv("MONGOURI")
	if uri == "" {
		log.Fatal("MONGOURI environment variable not set")
	}

	client, err := db.Connect(context.Background(), uri)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()
	log.Println("Connected to MongoDB")

	collection := client.Database("swiftpay").Collection("employees")

	for _, e := range employees {
		hash, err := auth.HashPassword(e.password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", e.fullName, err)
		}

		employee := models.Employee{
			ID:            primitive.NewObjectID(),
			FullName:      e.fullName,
			AccountNumber: e.accountNumber,
			PasswordHash:  hash,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, err = collection.InsertOne(ctx, employee)
		cancel()
		if err != nil {
			log.Fatalf("Failed to insert employee %s: %v", e.fullName, err)
		}
		log.Printf("Employee %s created successfully", e.fullName)
	}
}
