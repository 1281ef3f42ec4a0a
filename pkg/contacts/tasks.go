package contacts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/followuptask"
	"github.com/menshealthfinder/api/pkg/models"
)

var (
	// ErrTaskNotFound is returned when a follow-up task doesn't exist.
	ErrTaskNotFound = errors.New("follow-up task not found")
	// ErrTaskClosed is returned when completing or cancelling a task that
	// is already in a terminal status.
	ErrTaskClosed = errors.New("follow-up task is already closed")
)

// TaskFilters narrows the follow-up task list.
type TaskFilters struct {
	ContactID *int
	Status    string
	DueBefore *time.Time
	Limit     int
}

// ListTasks returns follow-up tasks ordered by due time, soonest first.
func (s *Service) ListTasks(ctx context.Context, filters TaskFilters) ([]models.TaskResponse, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := s.db.FollowUpTask.Query()
	if filters.ContactID != nil {
		query = query.Where(followuptask.ContactID(*filters.ContactID))
	}
	if filters.Status != "" {
		query = query.Where(followuptask.StatusEQ(followuptask.Status(filters.Status)))
	}
	if filters.DueBefore != nil {
		query = query.Where(followuptask.DueAtLTE(*filters.DueBefore))
	}

	rows, err := query.
		Order(ent.Asc(followuptask.FieldDueAt)).
		Limit(filters.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}

	responses := make([]models.TaskResponse, len(rows))
	for i, row := range rows {
		responses[i] = toTaskResponse(row)
	}
	return responses, nil
}

// CompleteTask marks a pending or in-progress task completed.
func (s *Service) CompleteTask(ctx context.Context, taskID int) (*models.TaskResponse, error) {
	return s.closeTask(ctx, taskID, followuptask.StatusCompleted)
}

// CancelTask marks a pending or in-progress task cancelled.
func (s *Service) CancelTask(ctx context.Context, taskID int) (*models.TaskResponse, error) {
	return s.closeTask(ctx, taskID, followuptask.StatusCancelled)
}

func (s *Service) closeTask(ctx context.Context, taskID int, status followuptask.Status) (*models.TaskResponse, error) {
	row, err := s.db.FollowUpTask.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if row.Status == followuptask.StatusCompleted || row.Status == followuptask.StatusCancelled {
		return nil, fmt.Errorf("%w: %s", ErrTaskClosed, row.Status)
	}

	updated, err := row.Update().
		SetStatus(status).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to close task: %w", err)
	}

	response := toTaskResponse(updated)
	return &response, nil
}

func toTaskResponse(row *ent.FollowUpTask) models.TaskResponse {
	return models.TaskResponse{
		ID:        row.ID,
		ContactID: row.ContactID,
		RuleName:  row.RuleName,
		Type:      string(row.Type),
		Title:     row.Title,
		Template:  row.Template,
		Priority:  string(row.Priority),
		Status:    string(row.Status),
		DueAt:     row.DueAt.Format(time.RFC3339),
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
	}
}
