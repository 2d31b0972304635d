package models

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Transaction captures a single financial movement. Transactions are
// immutable once recorded; there is no update or delete operation.
type Transaction struct {
	ID          string          `bson:"id" json:"id"`
	Description string          `bson:"description" json:"description"`
	Amount      float64         `bson:"amount" json:"amount"`
	Type        TransactionType `bson:"type" json:"type"`
	Category    string          `bson:"category" json:"category"`
	Date        time.Time       `bson:"date" json:"date"`
}
