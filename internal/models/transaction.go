package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Transaction struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Buyer      string               `bson:"buyer" json:"buyer"`
	Amount     Currency             `bson:"amount" json:"amount"`
	ProductIDs []primitive.ObjectID `bson:"productIds" json:"productIds"`
	CreatedAt  time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Collection names as mongoose pluralizes the model names.
const (
	KPICollection         = "kpis"
	ProductCollection     = "products"
	TransactionCollection = "transactions"
)
