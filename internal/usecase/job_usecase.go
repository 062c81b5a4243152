package usecase

import (
	"context"
	"errors"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrInvalidJobID         = errors.New("invalid job id")
	ErrJobNotAssignedToTeam = errors.New("job not assigned to team")
	ErrInvalidJobTransition = errors.New("invalid job status transition")
)

// IJobUseCase serves the back office listing and the field portal actions.
//
// Field actions move a job pendente -> em_execucao -> concluida, or to
// cancelada from any non-terminal status, and only for the team assigned to it.
type IJobUseCase interface {
	List(ctx context.Context) ([]entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	ListByTeam(ctx context.Context, teamID string) ([]entities.Job, error)
	Start(ctx context.Context, teamID, jobID string) (entities.Job, error)
	Complete(ctx context.Context, teamID, jobID string) (entities.Job, error)
	Cancel(ctx context.Context, teamID, jobID, reason string) (entities.Job, error)
}

type JobUseCase struct {
	repo   interfaces.IJobRepository
	events interfaces.IJobEventPublisher
	logger *zap.Logger
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, events interfaces.IJobEventPublisher, logger *zap.Logger) *JobUseCase {
	return &JobUseCase{repo: repo, events: events, logger: logger.Named("job")}
}

func (u *JobUseCase) List(ctx context.Context) ([]entities.Job, error) {
	return u.repo.List(ctx)
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) ListByTeam(ctx context.Context, teamID string) ([]entities.Job, error) {
	return u.repo.ListByTeamID(ctx, teamID)
}

func (u *JobUseCase) Start(ctx context.Context, teamID, jobID string) (entities.Job, error) {
	return u.transition(ctx, teamID, jobID, entities.JobEventStarted, func(j *entities.Job, now time.Time) error {
		if j.Status != entities.JobStatusPendente {
			return ErrInvalidJobTransition
		}
		j.Status = entities.JobStatusEmExecucao
		j.StartedAt = &now
		return nil
	})
}

func (u *JobUseCase) Complete(ctx context.Context, teamID, jobID string) (entities.Job, error) {
	return u.transition(ctx, teamID, jobID, entities.JobEventCompleted, func(j *entities.Job, now time.Time) error {
		if j.Status != entities.JobStatusEmExecucao {
			return ErrInvalidJobTransition
		}
		j.Status = entities.JobStatusConcluida
		j.FinishedAt = &now
		return nil
	})
}

func (u *JobUseCase) Cancel(ctx context.Context, teamID, jobID, reason string) (entities.Job, error) {
	return u.transition(ctx, teamID, jobID, entities.JobEventCancelled, func(j *entities.Job, now time.Time) error {
		if j.Status.IsTerminal() {
			return ErrInvalidJobTransition
		}
		j.Status = entities.JobStatusCancelada
		j.FinishedAt = &now
		j.CancelReason = strings.TrimSpace(reason)
		return nil
	})
}

func (u *JobUseCase) transition(
	ctx context.Context,
	teamID, jobID string,
	eventType entities.JobEventType,
	apply func(j *entities.Job, now time.Time) error,
) (entities.Job, error) {
	job, err := u.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.TeamID != strings.TrimSpace(teamID) {
		return entities.Job{}, ErrJobNotAssignedToTeam
	}

	expected := job.Status
	now := time.Now().UTC()
	if err := apply(&job, now); err != nil {
		u.logger.Info("[job][usecase] transition refused", zap.String("job_id", job.ID), zap.String("status", string(expected)), zap.String("event", string(eventType)))
		return entities.Job{}, err
	}
	job.UpdatedAt = now

	saved, err := u.repo.Save(ctx, job, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Job{}, ErrInvalidJobTransition
		}
		return entities.Job{}, err
	}
	u.logger.Info("[job][usecase] status changed", zap.String("job_id", saved.ID), zap.String("from", string(expected)), zap.String("to", string(saved.Status)))

	if u.events != nil {
		ev := entities.JobEvent{Type: eventType, JobID: saved.ID, BudgetID: saved.BudgetID, TeamID: saved.TeamID, Status: saved.Status, Timestamp: now}
		if err := u.events.Publish(ctx, ev); err != nil {
			u.logger.Warn("[job][usecase] job event publish failed", zap.String("job_id", saved.ID), zap.Error(err))
		}
	}
	return saved, nil
}
