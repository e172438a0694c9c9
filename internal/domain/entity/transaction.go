package entity

import (
	"time"

	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
)

// TransactionType separates money coming in from money going out.
type TransactionType string

const (
	TransactionEarning TransactionType = "earning"
	TransactionExpense TransactionType = "expense"
)

const maxTransactionDescLen = 200

// Transaction is a single financial movement.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"ownerId"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Completed   bool            `json:"completed"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TransactionInput carries the fields of a new transaction. A zero Date
// means now.
type TransactionInput struct {
	Type        TransactionType
	Amount      float64
	Description string
	Date        time.Time
	Category    string
	Completed   bool
}

// TransactionPatch lists the mutable transaction fields; nil means unchanged.
type TransactionPatch struct {
	Type        *TransactionType
	Amount      *float64
	Description *string
	Date        *time.Time
	Category    *string
	Completed   *bool
}

// TransactionFilter narrows a transaction listing. Zero values do not filter.
type TransactionFilter struct {
	Year  int
	Month time.Month
	Type  TransactionType
}

// TransactionSummary aggregates a set of transactions.
type TransactionSummary struct {
	Earnings         float64 `json:"earnings"`
	Expenses         float64 `json:"expenses"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transactionCount"`
}

// DefaultCategory is the category used when none is given.
func (t TransactionType) DefaultCategory() string {
	if t == TransactionEarning {
		return "General Earning"
	}

	return "General Expense"
}

// NewTransaction validates input and builds a transaction.
func NewTransaction(ownerID uuid.UUID, in TransactionInput, now time.Time) (*Transaction, error) {
	date := in.Date
	if date.IsZero() {
		date = now
	}

	tx := &Transaction{
		ID:        NewID(),
		OwnerID:   ownerID,
		Type:      in.Type,
		Amount:    in.Amount,
		Date:      date.UTC(),
		Category:  in.Category,
		Completed: in.Completed,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}

	description, err := requireText("description", in.Description, maxTransactionDescLen)
	if err != nil {
		return nil, err
	}
	tx.Description = description

	if err := tx.normalize(); err != nil {
		return nil, err
	}

	return tx, nil
}

// Apply updates the transaction; the result is validated as a whole.
func (t *Transaction) Apply(patch TransactionPatch, now time.Time) error {
	next := *t
	if patch.Type != nil {
		next.Type = *patch.Type
	}
	if patch.Amount != nil {
		next.Amount = *patch.Amount
	}
	if patch.Description != nil {
		description, err := requireText("description", *patch.Description, maxTransactionDescLen)
		if err != nil {
			return err
		}
		next.Description = description
	}
	if patch.Date != nil {
		next.Date = patch.Date.UTC()
	}
	if patch.Category != nil {
		next.Category = *patch.Category
	}
	if patch.Completed != nil {
		next.Completed = *patch.Completed
	}

	if err := next.normalize(); err != nil {
		return err
	}
	if now = now.UTC(); now.After(next.UpdatedAt) {
		next.UpdatedAt = now
	}
	*t = next

	return nil
}

// Signed returns the amount as a balance contribution.
func (t *Transaction) Signed() float64 {
	if t.Type == TransactionExpense {
		return -t.Amount
	}

	return t.Amount
}

// Summarize totals transactions by type.
func Summarize(transactions []*Transaction) TransactionSummary {
	var summary TransactionSummary
	for _, tx := range transactions {
		switch tx.Type {
		case TransactionEarning:
			summary.Earnings += tx.Amount
		case TransactionExpense:
			summary.Expenses += tx.Amount
		}
	}
	summary.Balance = summary.Earnings - summary.Expenses
	summary.TransactionCount = len(transactions)

	return summary
}

func (t *Transaction) normalize() error {
	if err := checkOneOf("type", t.Type, TransactionEarning, TransactionExpense); err != nil {
		return err
	}
	if t.Amount < 0 {
		return domainerrors.Validationf("amount cannot be negative")
	}
	if t.Date.IsZero() {
		return domainerrors.Validationf("date is required")
	}

	category, err := limitText("category", t.Category, maxTransactionDescLen)
	if err != nil {
		return err
	}
	if category == "" {
		category = t.Type.DefaultCategory()
	}
	t.Category = category

	return nil
}
