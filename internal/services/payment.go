package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kylefourie/swiftpay-gobackend/internal/models"
)

// PaymentService owns the three pipeline collections: payments (pending),
// transactions (verified) and swift (submitted). Stage promotions are
// insert-then-delete pairs with no multi-document transaction around them; a
// crash between the two writes can duplicate or lose the record. See
// DESIGN.md before changing that.
type PaymentService struct {
	db *mongo.Database
}

func NewPaymentService(db *mongo.Database) *PaymentService {
	return &PaymentService{db: db}
}

// CreatePayment records a pending payment for the customer.
func (s *PaymentService) CreatePayment(ctx context.Context, customer *models.Customer, amount, currency, provider, recipientAccount, swiftCode string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	payment := &models.Payment{
		ID:               primitive.NewObjectID(),
		ReferenceID:      uuid.NewString(),
		CustomerID:       customer.ID,
		CustomerAccount:  customer.AccountNumber,
		Amount:           amount,
		Currency:         currency,
		Provider:         provider,
		RecipientAccount: recipientAccount,
		SwiftCode:        swiftCode,
		CreatedAt:        time.Now(),
	}

	if _, err := s.db.Collection("payments").InsertOne(ctx, payment); err != nil {
		log.Printf("Failed to insert payment for customer %s: %v", customer.AccountNumber, err)
		return nil, fmt.Errorf("failed to create payment: %v", err)
	}

	return payment, nil
}

// PendingPayments returns every payment awaiting review, in insertion order.
func (s *PaymentService) PendingPayments(ctx context.Context) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := s.db.Collection("payments").Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %v", err)
	}
	defer cur.Close(ctx)

	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %v", err)
	}

	return payments, nil
}

// VerifyPayment promotes a pending payment to the transactions collection
// and removes it from payments.
func (s *PaymentService) VerifyPayment(ctx context.Context, paymentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(paymentID)
	if err != nil {
		return ErrNotFound
	}

	var payment models.Payment
	if err := s.db.Collection("payments").FindOne(ctx, bson.M{"_id": objID}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		log.Printf("Failed to fetch payment %s: %v", paymentID, err)
		return fmt.Errorf("failed to fetch payment: %v", err)
	}

	transaction := models.NewTransaction(payment)
	transaction.ID = primitive.NewObjectID()
	if _, err := s.db.Collection("transactions").InsertOne(ctx, transaction); err != nil {
		log.Printf("Failed to insert transaction for payment %s: %v", paymentID, err)
		return fmt.Errorf("failed to create transaction: %v", err)
	}

	if _, err := s.db.Collection("payments").DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		log.Printf("Failed to delete payment %s after verification: %v", paymentID, err)
		return fmt.Errorf("failed to delete payment: %v", err)
	}

	return nil
}

// SubmitAllVerified moves every verified transaction to the swift collection
// and returns how many were submitted. Each item is its own insert-then-delete
// pair; a failure mid-loop leaves earlier items promoted. The query keys on
// transactions that still exist, so rerunning after a partial failure only
// picks up the leftovers.
func (s *PaymentService) SubmitAllVerified(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.db.Collection("transactions").Find(ctx, bson.M{"status": models.StatusVerified})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch verified transactions: %v", err)
	}
	defer cur.Close(ctx)

	var transactions []models.Transaction
	if err := cur.All(ctx, &transactions); err != nil {
		return 0, fmt.Errorf("failed to decode transactions: %v", err)
	}

	submitted := 0
	for _, transaction := range transactions {
		record := models.NewSwiftRecord(transaction)
		record.ID = primitive.NewObjectID()
		if _, err := s.db.Collection("swift").InsertOne(ctx, record); err != nil {
			log.Printf("Failed to insert SWIFT record for transaction %s: %v", transaction.ID.Hex(), err)
			return submitted, fmt.Errorf("failed to create SWIFT record: %v", err)
		}
		if _, err := s.db.Collection("transactions").DeleteOne(ctx, bson.M{"_id": transaction.ID}); err != nil {
			log.Printf("Failed to delete transaction %s after submission: %v", transaction.ID.Hex(), err)
			return submitted, fmt.Errorf("failed to delete transaction: %v", err)
		}
		submitted++
	}

	return submitted, nil
}
