package impl

import (
	"context"
	"log/slog"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/domain/repository"
	"lifeos/internal/errors"
	"lifeos/internal/usecase"
	"lifeos/internal/util"

	"github.com/google/uuid"
)

// lifePlanService implements the LifePlanUsecase interface.
type lifePlanService struct {
	planRepo repository.LifePlanRepository
	now      func() time.Time
	logger   *slog.Logger
}

// NewLifePlanService is the constructor for lifePlanService.
func NewLifePlanService(planRepo repository.LifePlanRepository, logger *slog.Logger) usecase.LifePlanUsecase {
	return &lifePlanService{
		planRepo: planRepo,
		now:      time.Now,
		logger:   logger,
	}
}

func (srv *lifePlanService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.LifePlan, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	plans, err := srv.planRepo.List(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list life plans")
	}

	return plans, nil
}

func (srv *lifePlanService) ListByTargetYear(ctx context.Context, ownerID uuid.UUID, startYear, endYear int) ([]*entity.LifePlan, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if startYear <= 0 || endYear <= 0 {
		return nil, domainerrors.Validationf("startYear and endYear are required")
	}
	if endYear < startYear {
		return nil, domainerrors.Validationf("endYear cannot be before startYear")
	}

	plans, err := srv.planRepo.ListByTargetYear(ctx, ownerID, startYear, endYear)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list life plans by target year")
	}

	return plans, nil
}

func (srv *lifePlanService) Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.LifePlan, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	plan, err := srv.planRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find life plan")
	}

	return plan, nil
}

func (srv *lifePlanService) Create(ctx context.Context, ownerID uuid.UUID, input entity.LifePlanInput) (*entity.LifePlan, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	plan, err := entity.NewLifePlan(ownerID, input, srv.now())
	if err != nil {
		return nil, err
	}
	if err := srv.planRepo.Create(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to create life plan")
	}

	return plan, nil
}

func (srv *lifePlanService) Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.LifePlanPatch) (*entity.LifePlan, error) {
	plan, err := srv.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := plan.Apply(patch, srv.now()); err != nil {
		return nil, err
	}
	if err := srv.planRepo.Update(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to update life plan")
	}

	return plan, nil
}

func (srv *lifePlanService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}

	if err := srv.planRepo.Delete(ctx, ownerID, id); err != nil {
		return errors.Wrap(err, "failed to delete life plan")
	}

	return nil
}

// transactionService implements the TransactionUsecase interface.
type transactionService struct {
	txRepo repository.TransactionRepository
	now    func() time.Time
	logger *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(txRepo repository.TransactionRepository, logger *slog.Logger) usecase.TransactionUsecase {
	return &transactionService{
		txRepo: txRepo,
		now:    time.Now,
		logger: logger,
	}
}

func (srv *transactionService) List(ctx context.Context, ownerID uuid.UUID, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	filter, err := srv.normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	transactions, err := srv.txRepo.List(ctx, ownerID, filter, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

func (srv *transactionService) Summary(ctx context.Context, ownerID uuid.UUID, filter entity.TransactionFilter) (*entity.TransactionSummary, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	filter, err := srv.normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	summary, err := srv.txRepo.Summarize(ctx, ownerID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize transactions")
	}

	return &summary, nil
}

func (srv *transactionService) Create(ctx context.Context, ownerID uuid.UUID, input entity.TransactionInput) (*entity.Transaction, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	tx, err := entity.NewTransaction(ownerID, input, srv.now())
	if err != nil {
		return nil, err
	}
	if err := srv.txRepo.Create(ctx, tx); err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}

	return tx, nil
}

func (srv *transactionService) Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.TransactionPatch) (*entity.Transaction, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	tx, err := srv.txRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find transaction")
	}
	if err := tx.Apply(patch, srv.now()); err != nil {
		return nil, err
	}
	if err := srv.txRepo.Update(ctx, tx); err != nil {
		return nil, errors.Wrap(err, "failed to update transaction")
	}

	return tx, nil
}

func (srv *transactionService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}

	if err := srv.txRepo.Delete(ctx, ownerID, id); err != nil {
		return errors.Wrap(err, "failed to delete transaction")
	}

	return nil
}

// normalizeFilter checks the month and type; a month without a year means
// that month of the current year.
func (srv *transactionService) normalizeFilter(filter entity.TransactionFilter) (entity.TransactionFilter, error) {
	if filter.Month < 0 || filter.Month > time.December {
		return filter, domainerrors.Validationf("month must be between 1 and 12")
	}
	if filter.Year < 0 {
		return filter, domainerrors.Validationf("year cannot be negative")
	}
	if filter.Month != 0 && filter.Year == 0 {
		filter.Year = srv.now().UTC().Year()
	}
	switch filter.Type {
	case "", entity.TransactionEarning, entity.TransactionExpense:
	default:
		return filter, domainerrors.Validationf("type must be one of [%s %s]", entity.TransactionEarning, entity.TransactionExpense)
	}

	return filter, nil
}

// diaryService implements the DiaryUsecase interface.
type diaryService struct {
	diaryRepo repository.DiaryRepository
	now       func() time.Time
	logger    *slog.Logger
}

// NewDiaryService is the constructor for diaryService.
func NewDiaryService(diaryRepo repository.DiaryRepository, logger *slog.Logger) usecase.DiaryUsecase {
	return &diaryService{
		diaryRepo: diaryRepo,
		now:       time.Now,
		logger:    logger,
	}
}

func (srv *diaryService) List(ctx context.Context, ownerID uuid.UUID, query entity.DiaryQuery) (*entity.DiaryPage, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	query, err := query.Normalize()
	if err != nil {
		return nil, err
	}

	entries, total, err := srv.diaryRepo.List(ctx, ownerID, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list diary entries")
	}

	return &entity.DiaryPage{
		Entries: entries,
		Total:   total,
		Page:    query.Page,
		Limit:   query.Limit,
		HasNext: int64(query.Offset()+len(entries)) < total,
		HasPrev: query.Page > 1,
	}, nil
}

func (srv *diaryService) ByDay(ctx context.Context, ownerID uuid.UUID, day time.Time) (*entity.DiaryEntry, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	entry, err := srv.diaryRepo.FindByDay(ctx, ownerID, util.StartOfDay(day))
	if errors.Is(err, domainerrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find diary entry by day")
	}

	return entry, nil
}

func (srv *diaryService) Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.DiaryEntry, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	entry, err := srv.diaryRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find diary entry")
	}

	return entry, nil
}

func (srv *diaryService) Create(ctx context.Context, ownerID uuid.UUID, input entity.DiaryInput) (*entity.DiaryEntry, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	entry, err := entity.NewDiaryEntry(ownerID, input, srv.now())
	if err != nil {
		return nil, err
	}
	if err := srv.diaryRepo.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create diary entry")
	}

	return entry, nil
}

func (srv *diaryService) Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.DiaryPatch) (*entity.DiaryEntry, error) {
	entry, err := srv.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := entry.Apply(patch, srv.now()); err != nil {
		return nil, err
	}
	if err := srv.diaryRepo.Update(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to update diary entry")
	}

	return entry, nil
}

func (srv *diaryService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}

	if err := srv.diaryRepo.Delete(ctx, ownerID, id); err != nil {
		return errors.Wrap(err, "failed to delete diary entry")
	}

	return nil
}
