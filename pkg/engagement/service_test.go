package engagement

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/ent/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEngagementTestDB(t *testing.T) *ent.Client {
	return enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
}

func createEngagementTestClinic(t *testing.T, client *ent.Client, slug string) *ent.Clinic {
	c, err := client.Clinic.Create().
		SetName("Apex Men's Health").
		SetSlug(slug).
		SetCity("Austin").
		SetState("TX").
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func addSession(t *testing.T, client *ent.Client, clinicID int, sessionID string, actions []schema.SessionAction) {
	_, err := client.LeadSession.Create().
		SetSessionID(sessionID).
		SetClinicID(clinicID).
		SetActions(actions).
		SetLastActiveAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
}

func TestScore_MonotonicAndCapped(t *testing.T) {
	assert.Equal(t, 0, Score(0, 0))
	assert.Equal(t, 2, Score(1, 0))
	assert.Equal(t, 6, Score(0, 1))
	assert.Equal(t, 100, Score(100, 100))

	prev := -1
	for clicks := 0; clicks <= 60; clicks += 5 {
		s := Score(clicks, 0)
		assert.GreaterOrEqual(t, s, prev)
		prev = s
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusNone, Classify(0, 0))
	assert.Equal(t, StatusLow, Classify(1, 0))
	assert.Equal(t, StatusEngaged, Classify(15, 0))  // 30 points
	assert.Equal(t, StatusEngaged, Classify(0, 5))   // 30 points
	assert.Equal(t, StatusLow, Classify(2, 2))       // 16 points
}

func TestRecomputeClinic(t *testing.T) {
	client := setupEngagementTestDB(t)
	defer client.Close()
	ctx := context.Background()
	service := NewService(client)

	c := createEngagementTestClinic(t, client, "apex-mens-health-austin")

	now := time.Now()
	addSession(t, client, c.ID, "sess-1", []schema.SessionAction{
		{Name: "profile-view", Timestamp: now.Add(-1 * time.Hour)},
		{Name: "call-click", Timestamp: now.Add(-30 * time.Minute)},
		{Name: "scrolled-50", Timestamp: now.Add(-29 * time.Minute)},
	})
	addSession(t, client, c.ID, "sess-2", []schema.SessionAction{
		{Name: "website-click", Timestamp: now.Add(-2 * time.Hour)},
	})

	snap, err := service.RecomputeClinic(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Clicks)
	assert.Equal(t, 1, snap.Calls)
	assert.Equal(t, Score(2, 1), snap.Score)
	assert.Equal(t, StatusLow, snap.Status)

	// Snapshot is persisted on the listing.
	reloaded, err := client.Clinic.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Clicks30d)
	assert.Equal(t, 1, reloaded.Calls30d)
	assert.Equal(t, snap.Score, reloaded.EngagementScore)
}

func TestRecomputeClinic_OldActionsExcluded(t *testing.T) {
	client := setupEngagementTestDB(t)
	defer client.Close()
	ctx := context.Background()
	service := NewService(client)

	c := createEngagementTestClinic(t, client, "stale-clinic-dallas")

	// Session touched recently but all actions fall outside the window.
	addSession(t, client, c.ID, "sess-old", []schema.SessionAction{
		{Name: "call-click", Timestamp: time.Now().Add(-45 * 24 * time.Hour)},
	})

	snap, err := service.RecomputeClinic(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Clicks)
	assert.Equal(t, 0, snap.Calls)
	assert.Equal(t, StatusNone, snap.Status)
}

func TestRecomputeClinic_NotFound(t *testing.T) {
	client := setupEngagementTestDB(t)
	defer client.Close()

	_, err := NewService(client).RecomputeClinic(context.Background(), 99999)
	assert.ErrorIs(t, err, ErrClinicNotFound)
}

func TestGhostListings(t *testing.T) {
	client := setupEngagementTestDB(t)
	defer client.Close()
	ctx := context.Background()
	service := NewService(client)

	ghost := createEngagementTestClinic(t, client, "ghost-clinic-houston")
	active := createEngagementTestClinic(t, client, "busy-clinic-austin")
	addSession(t, client, active.ID, "sess-busy", []schema.SessionAction{
		{Name: "call-click", Timestamp: time.Now().Add(-time.Hour)},
		{Name: "call-click", Timestamp: time.Now().Add(-time.Minute)},
		{Name: "profile-view", Timestamp: time.Now().Add(-time.Minute)},
		{Name: "profile-view", Timestamp: time.Now().Add(-time.Minute)},
		{Name: "profile-view", Timestamp: time.Now().Add(-time.Minute)},
		{Name: "profile-view", Timestamp: time.Now().Add(-time.Minute)},
		{Name: "profile-view", Timestamp: time.Now().Add(-time.Minute)},
		{Name: "profile-view", Timestamp: time.Now().Add(-time.Minute)},
		{Name: "profile-view", Timestamp: time.Now().Add(-time.Minute)},
		{Name: "profile-view", Timestamp: time.Now().Add(-time.Minute)},
		{Name: "profile-view", Timestamp: time.Now().Add(-time.Minute)},
	})

	_, err := service.RecomputeAll(ctx)
	require.NoError(t, err)

	ghosts, err := service.GhostListings(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ghosts, 1)
	assert.Equal(t, ghost.ID, ghosts[0].ID)
}
