package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const StatusVerified = "verified"

// Transaction is a payment that passed staff verification and is waiting to
// be submitted to SWIFT. A payment lives in exactly one of the payments,
// transactions or swift collections at a time.
type Transaction struct {
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

// NewTransaction builds the verified-stage record for a payment. CreatedAt is
// carried over from the payment, not reset.
func NewTransaction(p Payment) Transaction {
	return Transaction{
		CustomerID:       p.CustomerID,
		CustomerAccount:  p.CustomerAccount,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Provider:         p.Provider,
		RecipientAccount: p.RecipientAccount,
		SwiftCode:        p.SwiftCode,
		Status:           StatusVerified,
		CreatedAt:        p.CreatedAt,
	}
}
