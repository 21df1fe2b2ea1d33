package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const StatusSubmitted = "submitted"

// SwiftRecord is the terminal stage of the pipeline: a verified transaction
// that has been handed to the settlement network. Never deleted.
type SwiftRecord struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID       primitive.ObjectID `bson:"customer_id" json:"customerId"`
	CustomerAccount  string             `bson:"customer_account" json:"customerAccount"`
	Amount           string             `bson:"amount" json:"amount"`
	Currency         string             `bson:"currency" json:"currency"`
	Provider         string             `bson:"provider" json:"provider"`
	RecipientAccount string             `bson:"recipient_account" json:"recipientAccount"`
	SwiftCode        string             `bson:"swift_code" json:"swiftCode"`
	Status           string             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}

// NewSwiftRecord builds the submitted-stage record for a verified
// transaction, carrying the original CreatedAt through.
func NewSwiftRecord(t Transaction) SwiftRecord {
	return SwiftRecord{
		CustomerID:       t.CustomerID,
		CustomerAccount:  t.CustomerAccount,
		Amount:           t.Amount,
		Currency:         t.Currency,
		Provider:         t.Provider,
		RecipientAccount: t.RecipientAccount,
		SwiftCode:        t.SwiftCode,
		Status:           StatusSubmitted,
		CreatedAt:        t.CreatedAt,
	}
}
