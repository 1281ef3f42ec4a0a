package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/ent/leadsession"
	"github.com/menshealthfinder/api/pkg/attribution"
	"github.com/menshealthfinder/api/pkg/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessionTest(t *testing.T) (*Service, *ent.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { cacheClient.Close() })

	entClient := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { entClient.Close() })

	return NewService(cacheClient, entClient), entClient
}

func trackPageView(t *testing.T, service *Service, id string) *State {
	state, err := service.Track(context.Background(), id, TrackInput{
		Name:  "page-view",
		Start: StartInput{PageURL: "https://menshealthfinder.com/clinics/austin", Device: "mobile"},
	})
	require.NoError(t, err)
	return state
}

func TestStart_ClassifiesSource(t *testing.T) {
	service, _ := setupSessionTest(t)
	ctx := context.Background()

	state, err := service.Start(ctx, StartInput{
		PageURL:  "https://menshealthfinder.com/?utm_medium=cpc&utm_source=google",
		Referrer: "https://www.facebook.com/somepage",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, state.ID)
	assert.Equal(t, attribution.SourcePaid, state.Source)
}

func TestTrack_ScrollMilestoneDedup(t *testing.T) {
	service, _ := setupSessionTest(t)
	ctx := context.Background()

	state := trackPageView(t, service, "")

	for _, depth := range []int{30, 55, 55, 80, 95} {
		var err error
		state, err = service.Track(ctx, state.ID, TrackInput{
			Name: "scroll",
			Data: map[string]interface{}{"percent": float64(depth)},
		})
		require.NoError(t, err)
	}

	var milestones []float64
	for _, a := range state.Actions {
		if a.Name == "scroll-depth" {
			milestones = append(milestones, a.Data["percent"].(float64))
		}
	}
	assert.Equal(t, []float64{25, 50, 75, 90}, milestones)
}

func TestTrack_ShallowScrollRecordsNothing(t *testing.T) {
	service, _ := setupSessionTest(t)
	ctx := context.Background()

	state := trackPageView(t, service, "")
	state, err := service.Track(ctx, state.ID, TrackInput{
		Name: "scroll",
		Data: map[string]interface{}{"percent": float64(10)},
	})
	require.NoError(t, err)

	for _, a := range state.Actions {
		assert.NotEqual(t, "scroll-depth", a.Name)
	}
}

func TestTrack_ImportantActionFlushesImmediately(t *testing.T) {
	service, entClient := setupSessionTest(t)
	ctx := context.Background()

	state := trackPageView(t, service, "")
	state, err := service.Track(ctx, state.ID, TrackInput{Name: "call-click"})
	require.NoError(t, err)
	assert.True(t, state.Converted)

	// Flushed without waiting for Destroy or the sweep.
	persisted, err := entClient.LeadSession.Query().
		Where(leadsession.SessionID(state.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, persisted.Converted)
	assert.Len(t, persisted.Actions, 2) // page-view + call-click
}

func TestTrack_ExpiredSessionGetsFreshID(t *testing.T) {
	service, _ := setupSessionTest(t)

	first := trackPageView(t, service, "")

	service.now = func() time.Time { return time.Now().Add(31 * time.Minute) }
	second := trackPageView(t, service, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, second.Actions, 1)
}

func TestTrack_ActivitySlidesExpiry(t *testing.T) {
	service, _ := setupSessionTest(t)

	first := trackPageView(t, service, "")

	// 20 minutes of idle, then activity; 20 more minutes later the session is
	// still the same one because the window slides.
	service.now = func() time.Time { return time.Now().Add(20 * time.Minute) }
	second := trackPageView(t, service, first.ID)
	assert.Equal(t, first.ID, second.ID)

	service.now = func() time.Time { return time.Now().Add(40 * time.Minute) }
	third := trackPageView(t, service, first.ID)
	assert.Equal(t, first.ID, third.ID)
	assert.Len(t, third.Actions, 3)
}

func TestDestroy_PersistsAndRemoves(t *testing.T) {
	service, entClient := setupSessionTest(t)
	ctx := context.Background()

	state := trackPageView(t, service, "")
	require.NoError(t, service.Destroy(ctx, state.ID))

	_, err := entClient.LeadSession.Query().
		Where(leadsession.SessionID(state.ID)).
		Only(ctx)
	require.NoError(t, err)

	_, err = service.load(ctx, state.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSweepExpired(t *testing.T) {
	service, entClient := setupSessionTest(t)
	ctx := context.Background()

	stale := trackPageView(t, service, "")
	// Keep the second session inside the 30-minute idle window at sweep time
	service.now = func() time.Time { return time.Now().Add(20 * time.Minute) }
	fresh := trackPageView(t, service, "")

	service.now = func() time.Time { return time.Now().Add(45 * time.Minute) }
	swept, err := service.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	// The stale session was persisted and dropped; the fresh one lives on.
	_, err = entClient.LeadSession.Query().
		Where(leadsession.SessionID(stale.ID)).
		Only(ctx)
	require.NoError(t, err)

	_, err = service.load(ctx, stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = service.load(ctx, fresh.ID)
	require.NoError(t, err)
}
