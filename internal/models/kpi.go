package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KPI is the dashboard's aggregate financial summary.
type KPI struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	TotalProfit        Currency            `bson:"totalProfit" json:"totalProfit"`
	TotalRevenue       Currency            `bson:"totalRevenue" json:"totalRevenue"`
	TotalExpenses      Currency            `bson:"totalExpenses" json:"totalExpenses"`
	ExpensesByCategory map[string]Currency `bson:"expensesByCategory" json:"expensesByCategory"`
	MonthlyData        []MonthlyData       `bson:"monthlyData" json:"monthlyData"`
	DailyData          []DailyData         `bson:"dailyData" json:"dailyData"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type MonthlyData struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Month                  string             `bson:"month" json:"month"`
	Revenue                Currency           `bson:"revenue" json:"revenue"`
	Expenses               Currency           `bson:"expenses" json:"expenses"`
	OperationalExpenses    Currency           `bson:"operationalExpenses" json:"operationalExpenses"`
	NonOperationalExpenses Currency           `bson:"nonOperationalExpenses" json:"nonOperationalExpenses"`
}

type DailyData struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Date     string             `bson:"date" json:"date"`
	Revenue  Currency           `bson:"revenue" json:"revenue"`
	Expenses Currency           `bson:"expenses" json:"expenses"`
}
