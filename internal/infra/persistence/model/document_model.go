package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DocumentModel mirrors the 'aggregate_documents' table. Each row holds one
// aggregate root serialised as a JSON body, next to the few columns needed
// to filter, order and version it.
type DocumentModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Kind       string         `gorm:"type:varchar(32);not null;uniqueIndex:idx_documents_natural_key,priority:1;index:idx_documents_owner_kind,priority:2"`
	OwnerID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_documents_natural_key,priority:2;index:idx_documents_owner_kind,priority:1"`
	NaturalKey *string        `gorm:"type:varchar(64);uniqueIndex:idx_documents_natural_key,priority:3"`
	Name       string         `gorm:"type:varchar(200)"`
	RangeStart *time.Time     `gorm:"index"`
	RangeEnd   *time.Time     `gorm:"index"`
	Deleted    bool           `gorm:"not null;default:false"`
	Version    int64          `gorm:"not null;default:1"`
	Body       datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "aggregate_documents"
}
