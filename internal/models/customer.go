package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer model
type Customer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName      string             `bson:"fullname" json:"fullName"`
	IDNumber      string             `bson:"id_number" json:"-"`
	AccountNumber string             `bson:"account_number" json:"accountNumber"`
	PasswordHash  string             `bson:"password_hash" json:"-"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
