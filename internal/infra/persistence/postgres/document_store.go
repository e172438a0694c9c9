package postgres

import (
	"context"
	"encoding/json"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/errors"
	"lifeos/internal/infra/metrics"
	"lifeos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// Document kinds stored in aggregate_documents.
const (
	kindChallenge       = "challenge"
	kindStudyStructure  = "study_structure"
	kindFestival        = "festival"
	kindSpecialSchedule = "special_schedule"
	kindDailySchedule   = "daily_schedule"
)

// documentIndex holds the columns projected out of an aggregate so that it
// can be filtered and ordered without decoding the body.
type documentIndex struct {
	NaturalKey *string
	Name       string
	RangeStart *time.Time
	RangeEnd   *time.Time
	Deleted    bool
}

// documentStore persists one kind of aggregate root as whole JSON documents.
// Writes are single statements, so a document is never partially updated.
type documentStore[E any, P interface {
	*E
	entity.Root
}] struct {
	db       *gorm.DB
	kind     string
	resource string
	index    func(P) documentIndex
	metrics  *metrics.Metrics
}

func newDocumentStore[E any, P interface {
	*E
	entity.Root
}](db *gorm.DB, m *metrics.Metrics, kind, resource string, index func(P) documentIndex) *documentStore[E, P] {
	return &documentStore[E, P]{
		db:       db,
		kind:     kind,
		resource: resource,
		index:    index,
		metrics:  m,
	}
}

func (s *documentStore[E, P]) scoped(ctx context.Context, ownerID uuid.UUID) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&model.DocumentModel{}).
		Where("kind = ? AND owner_id = ?", s.kind, ownerID)
}

// load reads a live document from the primary, so that a read following a
// write always observes it.
func (s *documentStore[E, P]) load(ctx context.Context, ownerID, id uuid.UUID) (P, error) {
	var row model.DocumentModel
	err := s.scoped(ctx, ownerID).
		Clauses(dbresolver.Write).
		Where("id = ? AND deleted = ?", id, false).
		Take(&row).Error
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.NotFound(s.resource)
		}

		return nil, domainerrors.NewStorageError(err, "failed to load "+s.resource)
	}

	return s.decode(&row)
}

func (s *documentStore[E, P]) findByKey(ctx context.Context, ownerID uuid.UUID, key string) (P, error) {
	var row model.DocumentModel
	err := s.scoped(ctx, ownerID).
		Clauses(dbresolver.Write).
		Where("natural_key = ? AND deleted = ?", key, false).
		Take(&row).Error
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.NotFound(s.resource)
		}

		return nil, domainerrors.NewStorageError(err, "failed to load "+s.resource)
	}

	return s.decode(&row)
}

// list reads live documents, allowing replicas to serve them.
func (s *documentStore[E, P]) list(ctx context.Context, ownerID uuid.UUID, order string, scopes ...func(*gorm.DB) *gorm.DB) ([]P, error) {
	var rows []model.DocumentModel
	err := s.scoped(ctx, ownerID).
		Clauses(dbresolver.Read).
		Where("deleted = ?", false).
		Scopes(scopes...).
		Order(order).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list "+s.resource)
	}

	out := make([]P, 0, len(rows))
	for i := range rows {
		p, err := s.decode(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

func (s *documentStore[E, P]) count(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var n int64
	if err := s.scoped(ctx, ownerID).Clauses(dbresolver.Read).Where("deleted = ?", false).Count(&n).Error; err != nil {
		return 0, domainerrors.NewStorageError(err, "failed to count "+s.resource)
	}

	return n, nil
}

func (s *documentStore[E, P]) create(ctx context.Context, p P) error {
	root := p.Root()
	if root.ID == uuid.Nil {
		root.ID = entity.NewID()
	}
	root.Version = 1

	row, err := s.encode(p)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		s.recordSave(metrics.SaveError)
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetailsf("%s already exists", s.resource)
		}

		return domainerrors.NewStorageError(err, "failed to create "+s.resource)
	}
	s.recordSave(metrics.SaveOK)

	return nil
}

// save writes the whole document in one conditional UPDATE. The row only
// matches while its version still equals the version that was loaded.
func (s *documentStore[E, P]) save(ctx context.Context, p P) error {
	root := p.Root()
	row, err := s.encode(p)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&model.DocumentModel{}).
		Where("id = ? AND owner_id = ? AND kind = ? AND version = ?", root.ID, root.OwnerID, s.kind, root.Version).
		Updates(map[string]any{
			"natural_key": row.NaturalKey,
			"name":        row.Name,
			"range_start": row.RangeStart,
			"range_end":   row.RangeEnd,
			"deleted":     row.Deleted,
			"body":        row.Body,
			"version":     gorm.Expr("version + 1"),
			"updated_at":  row.UpdatedAt,
		})
	if result.Error != nil {
		s.recordSave(metrics.SaveError)
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetailsf("%s key already in use", s.resource)
		}

		return domainerrors.NewStorageError(result.Error, "failed to save "+s.resource)
	}

	if result.RowsAffected == 0 {
		exists, err := s.exists(ctx, root.OwnerID, root.ID)
		if err != nil {
			return err
		}
		if !exists {
			return domainerrors.NotFound(s.resource)
		}
		s.recordSave(metrics.SaveConflict)

		return domainerrors.ErrConflict.WithDetailsf("%s was modified concurrently, reload and retry", s.resource)
	}

	root.Version++
	s.recordSave(metrics.SaveOK)

	return nil
}

// loadOrCreate returns the document stored under key, inserting the one
// built by build when none exists. Concurrent first accesses converge on a
// single row through the natural-key unique index.
func (s *documentStore[E, P]) loadOrCreate(ctx context.Context, ownerID uuid.UUID, key string, build func() P) (P, error) {
	existing, err := s.findByKey(ctx, ownerID, key)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	fresh := build()
	fresh.Root().Version = 1
	row, err := s.encode(fresh)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to create "+s.resource)
	}

	return s.findByKey(ctx, ownerID, key)
}

// upsert inserts the document or replaces the body of the one stored under
// the same natural key, then returns the stored document.
func (s *documentStore[E, P]) upsert(ctx context.Context, p P) (P, error) {
	root := p.Root()
	if root.ID == uuid.Nil {
		root.ID = entity.NewID()
	}
	root.Version = 1

	row, err := s.encode(p)
	if err != nil {
		return nil, err
	}
	if row.NaturalKey == nil {
		return nil, errors.Errorf("%s has no natural key to upsert on", s.resource)
	}

	updates := clause.AssignmentColumns([]string{"name", "range_start", "range_end", "deleted", "body", "updated_at"})
	updates = append(updates, clause.Assignment{
		Column: clause.Column{Name: "version"},
		Value:  gorm.Expr(model.DocumentModel{}.TableName() + ".version + 1"),
	})

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}, {Name: "owner_id"}, {Name: "natural_key"}},
			DoUpdates: updates,
		}).
		Create(row).Error
	if err != nil {
		s.recordSave(metrics.SaveError)

		return nil, domainerrors.NewStorageError(err, "failed to upsert "+s.resource)
	}
	s.recordSave(metrics.SaveOK)

	return s.findByKey(ctx, root.OwnerID, *row.NaturalKey)
}

func (s *documentStore[E, P]) delete(ctx context.Context, ownerID uuid.UUID, query string, args ...any) error {
	result := s.scoped(ctx, ownerID).Where(query, args...).Delete(&model.DocumentModel{})
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to delete "+s.resource)
	}
	if result.RowsAffected == 0 {
		return domainerrors.NotFound(s.resource)
	}

	return nil
}

func (s *documentStore[E, P]) deleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := s.scoped(ctx, ownerID).Delete(&model.DocumentModel{}).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to delete "+s.resource+" documents")
	}

	return nil
}

func (s *documentStore[E, P]) exists(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	var n int64
	if err := s.scoped(ctx, ownerID).Clauses(dbresolver.Write).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, domainerrors.NewStorageError(err, "failed to check "+s.resource)
	}

	return n > 0, nil
}

func (s *documentStore[E, P]) encode(p P) (*model.DocumentModel, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to encode "+s.resource)
	}

	root := p.Root()
	idx := s.index(p)

	return &model.DocumentModel{
		ID:         root.ID,
		Kind:       s.kind,
		OwnerID:    root.OwnerID,
		NaturalKey: idx.NaturalKey,
		Name:       idx.Name,
		RangeStart: idx.RangeStart,
		RangeEnd:   idx.RangeEnd,
		Deleted:    idx.Deleted,
		Version:    root.Version,
		Body:       datatypes.JSON(body),
		CreatedAt:  root.CreatedAt,
		UpdatedAt:  root.UpdatedAt,
	}, nil
}

// decode rebuilds the aggregate from its body. Metadata always comes from
// the columns, which are authoritative.
func (s *documentStore[E, P]) decode(row *model.DocumentModel) (P, error) {
	p := P(new(E))
	if err := json.Unmarshal(row.Body, p); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to decode "+s.resource)
	}

	root := p.Root()
	root.ID = row.ID
	root.OwnerID = row.OwnerID
	root.Version = row.Version
	root.CreatedAt = row.CreatedAt.UTC()
	root.UpdatedAt = row.UpdatedAt.UTC()

	return p, nil
}

func (s *documentStore[E, P]) recordSave(result string) {
	if s.metrics != nil {
		s.metrics.RecordDocumentSave(s.kind, result)
	}
}

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
