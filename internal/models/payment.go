package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a customer-submitted transfer request awaiting staff review.
// Amount is kept as the validated decimal string the customer sent.
type Payment struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReferenceID      string             `bson:"reference_id" json:"referenceId"`
	CustomerID       primitive.ObjectID `bson:"customer_id" json:"customerId"`
	CustomerAccount  string             `bson:"customer_account" json:"customerAccount"`
	Amount           string             `bson:"amount" json:"amount"`
	Currency         string             `bson:"currency" json:"currency"`
	Provider         string             `bson:"provider" json:"provider"`
	RecipientAccount string             `bson:"recipient_account" json:"recipientAccount"`
	SwiftCode        string             `bson:"swift_code" json:"swiftCode"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}
