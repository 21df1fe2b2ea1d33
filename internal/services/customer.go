package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kylefourie/swiftpay-gobackend/internal/auth"
	"github.com/kylefourie/swiftpay-gobackend/internal/models"
)

type CustomerService struct {
	collection *mongo.Collection
}

func NewCustomerService(db *mongo.Database) *CustomerService {
	return &CustomerService{collection: db.Collection("customers")}
}

// Register hashes the password and persists a new customer record. Input
// validation happens at the handler; the raw password never reaches storage.
func (s *CustomerService) Register(ctx context.Context, fullName, idNumber, accountNumber, password string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	customer := &models.Customer{
		ID:            primitive.NewObjectID(),
		FullName:      fullName,
		IDNumber:      idNumber,
		AccountNumber: accountNumber,
		PasswordHash:  hash,
		CreatedAt:     time.Now(),
	}

	if _, err := s.collection.InsertOne(ctx, customer); err != nil {
		log.Printf("Failed to insert customer %s: %v", accountNumber, err)
		return nil, fmt.Errorf("failed to create customer: %v", err)
	}

	return customer, nil
}

// Authenticate looks a customer up by account number and compares the
// password against the stored hash. An unknown account yields ErrNotFound,
// a wrong password ErrBadCredentials, never the other way around.
func (s *CustomerService) Authenticate(ctx context.Context, accountNumber, password string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	if err := s.collection.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		log.Printf("Failed to fetch customer %s: %v", accountNumber, err)
		return nil, fmt.Errorf("failed to fetch customer: %v", err)
	}

	if !auth.CheckPassword(password, customer.PasswordHash) {
		return nil, ErrBadCredentials
	}

	return &customer, nil
}

// GetCustomer fetches a customer by the hex id embedded in a token.
func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var customer models.Customer
	if err := s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		log.Printf("Failed to fetch customer %s: %v", id, err)
		return nil, fmt.Errorf("failed to fetch customer: %v", err)
	}

	return &customer, nil
}
