package contacts

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/ent/followuptask"
	"github.com/menshealthfinder/api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContactTest(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client), client
}

func createContactViaService(t *testing.T, s *Service) *models.ContactResponse {
	res, err := s.Create(context.Background(), models.CreateContactRequest{
		Name:  "Dr. Alan Reed",
		Email: "alan@apexclinic.com",
	})
	require.NoError(t, err)
	return res
}

func TestCreate_Defaults(t *testing.T) {
	service, _ := setupContactTest(t)

	res := createContactViaService(t, service)
	assert.Equal(t, "new", res.Stage)
	assert.Equal(t, "medium", res.Priority)
	assert.Equal(t, "active", res.Status)
	assert.Equal(t, 0, res.LeadScore)
	assert.Empty(t, res.LastContactedAt)
}

func TestArchive_SoftDeleteOnly(t *testing.T) {
	service, client := setupContactTest(t)
	ctx := context.Background()

	res := createContactViaService(t, service)

	require.NoError(t, service.Archive(ctx, res.ID))

	// The row survives; only the status flips.
	row, err := client.Contact.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.StatusArchived, row.Status)

	// Archived contacts reject mutation until restored.
	name := "Dr. Alan B. Reed"
	_, err = service.Update(ctx, res.ID, models.UpdateContactRequest{Name: &name})
	assert.ErrorIs(t, err, ErrContactArchived)

	require.NoError(t, service.Restore(ctx, res.ID))
	_, err = service.Update(ctx, res.ID, models.UpdateContactRequest{Name: &name})
	require.NoError(t, err)
}

func TestList_HidesArchivedByDefault(t *testing.T) {
	service, _ := setupContactTest(t)
	ctx := context.Background()

	kept := createContactViaService(t, service)
	gone := createContactViaService(t, service)
	require.NoError(t, service.Archive(ctx, gone.ID))

	res, err := service.List(ctx, ListFilters{})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, kept.ID, res.Data[0].ID)

	// Explicit status filter surfaces the archive.
	res, err = service.List(ctx, ListFilters{Status: "archived"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, gone.ID, res.Data[0].ID)
}

func TestChangeStage_ForwardAndOverride(t *testing.T) {
	service, _ := setupContactTest(t)
	ctx := context.Background()

	res := createContactViaService(t, service)

	advanced, err := service.ChangeStage(ctx, res.ID, models.ChangeStageRequest{Stage: "qualified"})
	require.NoError(t, err)
	assert.Equal(t, "qualified", advanced.Stage)

	// Backwards without override is rejected.
	_, err = service.ChangeStage(ctx, res.ID, models.ChangeStageRequest{Stage: "contacted"})
	assert.ErrorIs(t, err, ErrStageRegression)

	// The override flag makes the regression explicit.
	back, err := service.ChangeStage(ctx, res.ID, models.ChangeStageRequest{Stage: "contacted", Override: true})
	require.NoError(t, err)
	assert.Equal(t, "contacted", back.Stage)
}

func TestChangeStage_NurturingAndCloseFromAnywhere(t *testing.T) {
	service, _ := setupContactTest(t)
	ctx := context.Background()

	res := createContactViaService(t, service)

	_, err := service.ChangeStage(ctx, res.ID, models.ChangeStageRequest{Stage: "negotiation"})
	require.NoError(t, err)

	// Parking in nurturing is not a regression.
	parked, err := service.ChangeStage(ctx, res.ID, models.ChangeStageRequest{Stage: "nurturing"})
	require.NoError(t, err)
	assert.Equal(t, "nurturing", parked.Stage)

	// And leaving nurturing to any ordered stage is allowed.
	resumed, err := service.ChangeStage(ctx, res.ID, models.ChangeStageRequest{Stage: "contacted"})
	require.NoError(t, err)
	assert.Equal(t, "contacted", resumed.Stage)

	closed, err := service.ChangeStage(ctx, res.ID, models.ChangeStageRequest{Stage: "closed_lost"})
	require.NoError(t, err)
	assert.Equal(t, "closed_lost", closed.Stage)
}

func TestLogActivity_BumpsCountersAndScore(t *testing.T) {
	service, client := setupContactTest(t)
	ctx := context.Background()

	res := createContactViaService(t, service)

	entry, err := service.LogActivity(ctx, res.ID, models.LogActivityRequest{
		Type:    "call",
		Subject: "Intro call about the standard tier",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "call", entry.Type)

	row, err := client.Contact.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.TotalInteractions)
	assert.Equal(t, ScoreFor(0, 0, 0, 1), row.LeadScore)
	require.NotNil(t, row.LastContactedAt)
	assert.WithinDuration(t, time.Now(), *row.LastContactedAt, time.Minute)
}

func TestListActivities_NewestFirst(t *testing.T) {
	service, _ := setupContactTest(t)
	ctx := context.Background()

	res := createContactViaService(t, service)

	_, err := service.LogActivity(ctx, res.ID, models.LogActivityRequest{
		Type: "note", Subject: "First touch",
	}, nil)
	require.NoError(t, err)
	_, err = service.LogActivity(ctx, res.ID, models.LogActivityRequest{
		Type: "email", Subject: "Sent pricing sheet",
	}, nil)
	require.NoError(t, err)

	entries, err := service.ListActivities(ctx, res.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Sent pricing sheet", entries[0].Subject)
	assert.Equal(t, "First touch", entries[1].Subject)
}

func TestRecordEngagement_RecomputesScore(t *testing.T) {
	service, client := setupContactTest(t)
	ctx := context.Background()

	res := createContactViaService(t, service)

	require.NoError(t, service.RecordEngagement(ctx, res.ID, "email_open"))
	require.NoError(t, service.RecordEngagement(ctx, res.ID, "email_click"))
	require.NoError(t, service.RecordEngagement(ctx, res.ID, "website_visit"))

	row, err := client.Contact.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.EmailOpens)
	assert.Equal(t, 1, row.EmailClicks)
	assert.Equal(t, 1, row.WebsiteVisits)
	assert.Equal(t, 3, row.TotalInteractions)
	assert.Equal(t, ScoreFor(1, 1, 1, 3), row.LeadScore)

	assert.Error(t, service.RecordEngagement(ctx, res.ID, "carrier_pigeon"))
}

func TestScoreFor_Cap(t *testing.T) {
	assert.Equal(t, 0, ScoreFor(0, 0, 0, 0))
	assert.Equal(t, 2+5+3+1, ScoreFor(1, 1, 1, 1))
	assert.Equal(t, 100, ScoreFor(50, 50, 50, 50))
}

func TestTasks_CompleteAndCancel(t *testing.T) {
	service, client := setupContactTest(t)
	ctx := context.Background()

	res := createContactViaService(t, service)

	due := time.Now().Add(time.Hour)
	task, err := client.FollowUpTask.Create().
		SetContactID(res.ID).
		SetRuleName("new_lead_welcome").
		SetType(followuptask.TypeEmail).
		SetTitle("Send welcome email").
		SetDueAt(due).
		Save(ctx)
	require.NoError(t, err)

	completed, err := service.CompleteTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)

	// Terminal tasks stay closed.
	_, err = service.CancelTask(ctx, task.ID)
	assert.ErrorIs(t, err, ErrTaskClosed)

	other, err := client.FollowUpTask.Create().
		SetContactID(res.ID).
		SetRuleName("new_lead_welcome").
		SetType(followuptask.TypeCall).
		SetTitle("Follow-up call").
		SetDueAt(due.Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	cancelled, err := service.CancelTask(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
}

func TestListTasks_Filters(t *testing.T) {
	service, client := setupContactTest(t)
	ctx := context.Background()

	res := createContactViaService(t, service)

	now := time.Now()
	for i, title := range []string{"Day one email", "Day three call", "Week one email"} {
		_, err := client.FollowUpTask.Create().
			SetContactID(res.ID).
			SetRuleName("new_lead_welcome").
			SetType(followuptask.TypeEmail).
			SetTitle(title).
			SetDueAt(now.Add(time.Duration(i*24) * time.Hour)).
			Save(ctx)
		require.NoError(t, err)
	}

	tasks, err := service.ListTasks(ctx, TaskFilters{ContactID: &res.ID})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Day one email", tasks[0].Title)

	cutoff := now.Add(36 * time.Hour)
	soon, err := service.ListTasks(ctx, TaskFilters{ContactID: &res.ID, DueBefore: &cutoff})
	require.NoError(t, err)
	require.Len(t, soon, 2)

	pending, err := service.ListTasks(ctx, TaskFilters{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}
