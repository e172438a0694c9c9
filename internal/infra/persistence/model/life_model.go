package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LifePlanModel mirrors the 'life_plans' table.
type LifePlanModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_life_plans_owner_year,priority:1"`
	StartAge    int       `gorm:"not null"`
	EndAge      int       `gorm:"not null"`
	TargetYear  int       `gorm:"not null;index:idx_life_plans_owner_year,priority:2"`
	Description string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LifePlanModel) TableName() string {
	return "life_plans"
}

// TransactionModel mirrors the 'transactions' table.
type TransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_transactions_owner_date,priority:1"`
	Type        string    `gorm:"type:varchar(16);not null"`
	Amount      float64   `gorm:"not null"`
	Description string    `gorm:"type:varchar(200);not null"`
	Date        time.Time `gorm:"not null;index:idx_transactions_owner_date,priority:2"`
	Category    string    `gorm:"type:varchar(200)"`
	Completed   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// DiaryModel mirrors the 'diary_entries' table. The lists are JSON arrays.
type DiaryModel struct {
	ID         uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID                   `gorm:"type:uuid;not null;index:idx_diary_owner_date,priority:1"`
	Date       time.Time                   `gorm:"not null;index:idx_diary_owner_date,priority:2"`
	Content    string                      `gorm:"type:text;not null"`
	GoodThings datatypes.JSONSlice[string] `gorm:"not null"`
	BadThings  datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiaryModel) TableName() string {
	return "diary_entries"
}

// AllModels lists every persisted model, in migration order.
func AllModels() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&DocumentModel{},
		&LifePlanModel{},
		&TransactionModel{},
		&DiaryModel{},
	}
}
