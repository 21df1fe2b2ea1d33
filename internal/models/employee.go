package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a staff operator account. The server keeps a fixed in-process
// table of these; the seeder writes the same records to storage for tooling
// that expects them there.
type Employee struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName      string             `bson:"fullname" json:"fullName"`
	AccountNumber string             `bson:"account_number" json:"accountNumber"`
	PasswordHash  string             `bson:"password_hash" json:"-"`
}
