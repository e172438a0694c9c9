package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lifeos/internal/delivery/context"
	"lifeos/internal/domain/entity"
	"lifeos/internal/domain/repository"
	"lifeos/internal/errors"
	"lifeos/internal/usecase"

	"github.com/google/uuid"
)

// challengeService implements the ChallengeUsecase interface.
type challengeService struct {
	challengeRepo repository.ChallengeRepository
	now           func() time.Time
	logger        *slog.Logger
}

// NewChallengeService is the constructor for challengeService.
func NewChallengeService(challengeRepo repository.ChallengeRepository, logger *slog.Logger) usecase.ChallengeUsecase {
	return &challengeService{
		challengeRepo: challengeRepo,
		now:           time.Now,
		logger:        logger,
	}
}

func (srv *challengeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *challengeService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Challenge, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	challenges, err := srv.challengeRepo.List(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list challenges")
	}

	return challenges, nil
}

func (srv *challengeService) Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Challenge, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	challenge, err := srv.challengeRepo.Load(ctx, ownerID, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load challenge")
	}

	return challenge, nil
}

func (srv *challengeService) Create(ctx context.Context, ownerID uuid.UUID, input entity.ChallengeInput) (*entity.Challenge, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	challenge, err := entity.NewChallenge(ownerID, input, srv.now())
	if err != nil {
		return nil, err
	}
	if err := srv.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, errors.Wrap(err, "failed to create challenge")
	}

	srv.log(ctx).Debug("Challenge created", slog.Any("challengeID", challenge.ID))

	return challenge, nil
}

func (srv *challengeService) Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.ChallengePatch) (*entity.Challenge, error) {
	return srv.change(ctx, ownerID, id, "update challenge", func(c *entity.Challenge) error {
		return c.Apply(patch, srv.now())
	})
}

func (srv *challengeService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	_, err := srv.change(ctx, ownerID, id, "delete challenge", func(c *entity.Challenge) error {
		c.MarkDeleted(srv.now())

		return nil
	})

	return err
}

func (srv *challengeService) AddSection(ctx context.Context, ownerID, id uuid.UUID, input entity.SectionInput) (*entity.Challenge, error) {
	return srv.change(ctx, ownerID, id, "add section", func(c *entity.Challenge) error {
		_, err := c.AddSection(input, srv.now())

		return err
	})
}

func (srv *challengeService) UpdateSection(ctx context.Context, ownerID, id, sectionID uuid.UUID, patch entity.SectionPatch) (*entity.Challenge, error) {
	return srv.change(ctx, ownerID, id, "update section", func(c *entity.Challenge) error {
		_, err := c.UpdateSection(sectionID, patch, srv.now())

		return err
	})
}

func (srv *challengeService) RemoveSection(ctx context.Context, ownerID, id, sectionID uuid.UUID) (*entity.Challenge, error) {
	return srv.change(ctx, ownerID, id, "remove section", func(c *entity.Challenge) error {
		return c.RemoveSection(sectionID, srv.now())
	})
}

func (srv *challengeService) AddSubject(ctx context.Context, ownerID, id, sectionID uuid.UUID, input entity.SubjectInput) (*entity.Challenge, error) {
	return srv.change(ctx, ownerID, id, "add subject", func(c *entity.Challenge) error {
		_, err := c.AddSubject(sectionID, input, srv.now())

		return err
	})
}

func (srv *challengeService) AddSubjects(ctx context.Context, ownerID, id, sectionID uuid.UUID, inputs []entity.SubjectInput) (*entity.Challenge, error) {
	return srv.change(ctx, ownerID, id, "add subjects", func(c *entity.Challenge) error {
		_, err := c.AddSubjects(sectionID, inputs, srv.now())

		return err
	})
}

func (srv *challengeService) UpdateSubject(ctx context.Context, ownerID, id, subjectID uuid.UUID, patch entity.SubjectPatch) (*entity.Challenge, error) {
	return srv.change(ctx, ownerID, id, "update subject", func(c *entity.Challenge) error {
		_, err := c.UpdateSubject(subjectID, patch, srv.now())

		return err
	})
}

func (srv *challengeService) RemoveSubject(ctx context.Context, ownerID, id, subjectID uuid.UUID) (*entity.Challenge, error) {
	return srv.change(ctx, ownerID, id, "remove subject", func(c *entity.Challenge) error {
		return c.RemoveSubject(subjectID, srv.now())
	})
}

func (srv *challengeService) change(ctx context.Context, ownerID, id uuid.UUID, action string, fn func(*entity.Challenge) error) (*entity.Challenge, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}

	challenge, err := mutate(ctx,
		func(ctx context.Context) (*entity.Challenge, error) {
			return srv.challengeRepo.Load(ctx, ownerID, id)
		},
		fn,
		srv.challengeRepo.Save,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s", action)
	}

	return challenge, nil
}
