package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Price        Currency             `bson:"price" json:"price"`
	Expense      Currency             `bson:"expense" json:"expense"`
	Transactions []primitive.ObjectID `bson:"transactions" json:"transactions"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}
