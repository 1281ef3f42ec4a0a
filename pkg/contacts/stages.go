package contacts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/pkg/models"
)

// ErrStageRegression is returned when a stage change would move a contact
// backwards through the pipeline without the override flag.
var ErrStageRegression = errors.New("stage change would regress the pipeline")

// stageOrder positions the ordered pipeline stages. Nurturing and the two
// terminal stages sit outside the forward-only ordering: a contact can be
// parked in nurturing or closed from anywhere.
var stageOrder = map[contact.Stage]int{
	contact.StageNew:         1,
	contact.StageContacted:   2,
	contact.StageQualified:   3,
	contact.StageProposal:    4,
	contact.StageNegotiation: 5,
}

func isRegression(from, to contact.Stage) bool {
	fromOrder, fromOrdered := stageOrder[from]
	toOrder, toOrdered := stageOrder[to]
	if !fromOrdered || !toOrdered {
		return false
	}
	return toOrder < fromOrder
}

// ChangeStage moves a contact through the pipeline. Forward moves, closes and
// nurturing parks are always allowed; moving backwards requires the explicit
// override flag so accidental regressions never happen silently.
func (s *Service) ChangeStage(ctx context.Context, id int, req models.ChangeStageRequest) (*models.ContactResponse, error) {
	row, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}

	newStage := contact.Stage(req.Stage)
	if newStage == row.Stage {
		response := toContactResponse(row)
		return &response, nil
	}
	if isRegression(row.Stage, newStage) && !req.Override {
		return nil, fmt.Errorf("%w: %s -> %s", ErrStageRegression, row.Stage, newStage)
	}

	updated, err := row.Update().
		SetStage(newStage).
		SetStageChangedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to change stage: %w", err)
	}

	response := toContactResponse(updated)
	return &response, nil
}
