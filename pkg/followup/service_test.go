package followup

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/ent/followuptask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFollowUpTestDB(t *testing.T) *ent.Client {
	return enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
}

func createFollowUpTestContact(t *testing.T, client *ent.Client, opts ...func(*ent.ContactCreate)) *ent.Contact {
	builder := client.Contact.Create().
		SetName("Dr. Alan Reed").
		SetEmail("alan@apexclinic.com")
	for _, opt := range opts {
		opt(builder)
	}
	ct, err := builder.Save(context.Background())
	require.NoError(t, err)
	return ct
}

func TestBucketFor(t *testing.T) {
	t.Run("zero interactions is always low", func(t *testing.T) {
		assert.Equal(t, EngagementLow, BucketFor(0, 0, 0))
		assert.Equal(t, EngagementLow, BucketFor(10, 10, 0))
	})

	t.Run("boundary values", func(t *testing.T) {
		// (5*0.6 + 5*0.4) / 10 = 0.5 exactly -> high
		assert.Equal(t, EngagementHigh, BucketFor(5, 5, 10))
		// (2*0.6 + 2*0.4) / 10 = 0.2 exactly -> medium
		assert.Equal(t, EngagementMedium, BucketFor(2, 2, 10))
		// (1*0.6 + 1*0.4) / 10 = 0.1 -> low
		assert.Equal(t, EngagementLow, BucketFor(1, 1, 10))
	})
}

func TestEvaluateContact_NewLeadWelcome(t *testing.T) {
	client := setupFollowUpTestDB(t)
	defer client.Close()
	ctx := context.Background()
	service := NewService(client)

	ct := createFollowUpTestContact(t, client) // stage=new, created now

	res, err := service.EvaluateContact(ctx, ct.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"new_lead_welcome"}, res.MatchedRules)
	assert.Equal(t, 3, res.TasksCreated)

	tasks, err := client.FollowUpTask.Query().
		Where(followuptask.ContactID(ct.ID)).
		Order(ent.Asc(followuptask.FieldDueAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	// Delays of 1h, 72h and 168h from creation.
	base := tasks[0].CreatedAt
	assert.WithinDuration(t, base.Add(1*time.Hour), tasks[0].DueAt, time.Minute)
	assert.WithinDuration(t, base.Add(72*time.Hour), tasks[1].DueAt, time.Minute)
	assert.WithinDuration(t, base.Add(168*time.Hour), tasks[2].DueAt, time.Minute)

	for _, task := range tasks {
		assert.Equal(t, "new_lead_welcome", task.RuleName)
		assert.Equal(t, followuptask.StatusPending, task.Status)
	}
}

func TestEvaluateContact_OnceRuleNeverRefires(t *testing.T) {
	client := setupFollowUpTestDB(t)
	defer client.Close()
	ctx := context.Background()
	service := NewService(client)

	ct := createFollowUpTestContact(t, client)

	first, err := service.EvaluateContact(ctx, ct.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, first.TasksCreated)

	// Even far in the future, a once rule must not re-fire.
	service.now = func() time.Time { return time.Now().Add(90 * 24 * time.Hour) }
	second, err := service.EvaluateContact(ctx, ct.ID)
	require.NoError(t, err)
	assert.NotContains(t, second.MatchedRules, "new_lead_welcome")
}

func TestEvaluateContact_LookbackSuppressesRefire(t *testing.T) {
	client := setupFollowUpTestDB(t)
	defer client.Close()
	ctx := context.Background()
	service := NewService(client)

	stale := time.Now().Add(-10 * 24 * time.Hour)
	ct := createFollowUpTestContact(t, client, func(b *ent.ContactCreate) {
		b.SetStage(contact.StageContacted).SetLastContactedAt(stale)
	})

	first, err := service.EvaluateContact(ctx, ct.ID)
	require.NoError(t, err)
	assert.Contains(t, first.MatchedRules, "stale_lead_outreach")

	// Re-evaluating within the daily lookback window creates nothing new
	// from that rule.
	before, err := client.FollowUpTask.Query().
		Where(followuptask.ContactID(ct.ID), followuptask.RuleName("stale_lead_outreach")).
		Count(ctx)
	require.NoError(t, err)

	second, err := service.EvaluateContact(ctx, ct.ID)
	require.NoError(t, err)
	assert.NotContains(t, second.MatchedRules, "stale_lead_outreach")

	after, err := client.FollowUpTask.Query().
		Where(followuptask.ContactID(ct.ID), followuptask.RuleName("stale_lead_outreach")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestEvaluateContact_LookbackExpiresAndRefires(t *testing.T) {
	client := setupFollowUpTestDB(t)
	defer client.Close()
	ctx := context.Background()
	service := NewService(client)

	stale := time.Now().Add(-20 * 24 * time.Hour)
	ct := createFollowUpTestContact(t, client, func(b *ent.ContactCreate) {
		b.SetStage(contact.StageContacted).SetLastContactedAt(stale)
	})

	_, err := service.EvaluateContact(ctx, ct.ID)
	require.NoError(t, err)

	// Two days later the daily rule's 24h lookback has passed.
	service.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
	res, err := service.EvaluateContact(ctx, ct.ID)
	require.NoError(t, err)
	assert.Contains(t, res.MatchedRules, "stale_lead_outreach")
}

func TestEvaluateContact_AllActionsFireTogether(t *testing.T) {
	client := setupFollowUpTestDB(t)
	defer client.Close()
	ctx := context.Background()
	service := NewService(client)

	ct := createFollowUpTestContact(t, client, func(b *ent.ContactCreate) {
		b.SetStage(contact.StageQualified).SetLeadScore(75)
	})

	res, err := service.EvaluateContact(ctx, ct.ID)
	require.NoError(t, err)
	assert.Contains(t, res.MatchedRules, "qualified_proposal_push")

	tasks, err := client.FollowUpTask.Query().
		Where(followuptask.ContactID(ct.ID), followuptask.RuleName("qualified_proposal_push")).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2) // email + meeting, never a partial rule
}

func TestEvaluateContact_NoMatchCreatesNothing(t *testing.T) {
	client := setupFollowUpTestDB(t)
	defer client.Close()
	ctx := context.Background()
	service := NewService(client)

	ct := createFollowUpTestContact(t, client, func(b *ent.ContactCreate) {
		b.SetStage(contact.StageClosedWon).SetLastContactedAt(time.Now())
	})

	res, err := service.EvaluateContact(ctx, ct.ID)
	require.NoError(t, err)
	assert.Empty(t, res.MatchedRules)

	count, err := client.FollowUpTask.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestEvaluateContact_NotFound(t *testing.T) {
	client := setupFollowUpTestDB(t)
	defer client.Close()

	_, err := NewService(client).EvaluateContact(context.Background(), 424242)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestEvaluateClinicContacts(t *testing.T) {
	client := setupFollowUpTestDB(t)
	defer client.Close()
	ctx := context.Background()
	service := NewService(client)

	clinic, err := client.Clinic.Create().
		SetName("Summit Men's Clinic").
		SetSlug("summit-mens-clinic-denver").
		SetCity("Denver").
		SetState("CO").
		Save(ctx)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		createFollowUpTestContact(t, client, func(b *ent.ContactCreate) {
			b.SetClinicID(clinic.ID)
		})
	}
	// Archived contacts are excluded from batch evaluation.
	createFollowUpTestContact(t, client, func(b *ent.ContactCreate) {
		b.SetClinicID(clinic.ID).SetStatus(contact.StatusArchived)
	})

	batch, err := service.EvaluateClinicContacts(ctx, clinic.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, batch.ContactsEvaluated)
	assert.Equal(t, 0, batch.ContactsFailed)
	assert.Equal(t, 9, batch.TasksCreated) // 3 welcome tasks each
}
