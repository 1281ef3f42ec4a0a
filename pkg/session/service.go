// Package session captures visitor browsing sessions. Live session state is
// buffered in Redis and persisted to the database best-effort: a persistence
// failure is logged and never surfaced to the visitor.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/leadsession"
	"github.com/menshealthfinder/api/ent/schema"
	"github.com/menshealthfinder/api/pkg/attribution"
	"github.com/menshealthfinder/api/pkg/cache"
	"github.com/menshealthfinder/api/pkg/metrics"
)

const (
	// idleWindow is the sliding inactivity window. A session idle longer than
	// this is expired; tracking against it issues a fresh session id.
	idleWindow = 30 * time.Minute

	// retention keeps expired state in Redis long enough for the sweep job to
	// persist it before Redis drops the key.
	retention = 2 * time.Hour

	keyPrefix = "session:"
	activeSet = "sessions:active"
)

// scrollMilestones are the only scroll depths recorded, each at most once per
// session.
var scrollMilestones = []int{25, 50, 75, 90}

// importantActions force an immediate flush so a mid-session crash cannot
// lose a conversion signal.
var importantActions = map[string]bool{
	"form-submit":    true,
	"call-click":     true,
	"phone-click":    true,
	"contact-submit": true,
}

// ErrSessionNotFound is returned when the session id has no live state.
var ErrSessionNotFound = errors.New("session not found")

// State is the live session buffer held in Redis.
type State struct {
	ID           string                 `json:"id"`
	ClinicID     *int                   `json:"clinic_id,omitempty"`
	Source       attribution.Source     `json:"source"`
	Device       string                 `json:"device"`
	Browser      string                 `json:"browser"`
	Actions      []schema.SessionAction `json:"actions"`
	ScrollSeen   map[int]bool           `json:"scroll_seen"`
	Converted    bool                   `json:"converted"`
	StartedAt    time.Time              `json:"started_at"`
	LastActiveAt time.Time              `json:"last_active_at"`
}

func (s *State) expired(now time.Time) bool {
	return now.Sub(s.LastActiveAt) > idleWindow
}

// Service is the session capture engine.
type Service struct {
	cache   *cache.Client
	client  *ent.Client
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService creates a session service over Redis and the database.
func NewService(cacheClient *cache.Client, entClient *ent.Client) *Service {
	return &Service{
		cache:  cacheClient,
		client: entClient,
		now:    time.Now,
	}
}

// SetMetrics attaches the Prometheus counters.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// StartInput carries the first-pageview context of a new session.
type StartInput struct {
	ClinicID *int
	PageURL  string
	Referrer string
	Device   string
	Browser  string
}

// Start creates a new session, classifying its traffic source from the landing
// URL and referrer, and returns the session id.
func (s *Service) Start(ctx context.Context, in StartInput) (*State, error) {
	now := s.now()
	state := &State{
		ID:           newSessionID(),
		ClinicID:     in.ClinicID,
		Source:       attribution.Classify(in.PageURL, in.Referrer),
		Device:       in.Device,
		Browser:      in.Browser,
		ScrollSeen:   make(map[int]bool),
		StartedAt:    now,
		LastActiveAt: now,
	}
	if err := s.save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return state, nil
}

// TrackInput is one tracked action.
type TrackInput struct {
	Name string
	Data map[string]interface{}
	// Start context, used only when the session must be (re)created.
	Start StartInput
}

// Track records one action on the session. An unknown or expired session id
// gets a fresh session transparently; callers must adopt the returned state's
// id. Scroll actions are reduced to the 25/50/75/90 milestones with at most
// one record per milestone. Important actions flush the buffer immediately.
func (s *Service) Track(ctx context.Context, sessionID string, in TrackInput) (*State, error) {
	now := s.now()

	state, err := s.load(ctx, sessionID)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return nil, err
	}
	if state == nil || state.expired(now) {
		state, err = s.Start(ctx, in.Start)
		if err != nil {
			return nil, err
		}
	}

	recorded := s.record(state, in, now)
	state.LastActiveAt = now

	if err := s.save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	if recorded && importantActions[in.Name] {
		if err := s.persist(ctx, state); err != nil {
			log.Printf("⚠️  Session %s flush failed: %v", state.ID, err)
		}
	}

	return state, nil
}

// record appends the action to the buffer, returning false when a duplicate
// scroll milestone was dropped. Buffer order is append order.
func (s *Service) record(state *State, in TrackInput, now time.Time) bool {
	name := in.Name
	data := in.Data

	if name == "scroll" {
		milestone, ok := milestoneFor(data)
		if !ok || state.ScrollSeen[milestone] {
			return false
		}
		state.ScrollSeen[milestone] = true
		name = "scroll-depth"
		// float64 keeps the value type stable across the Redis JSON round trip.
		data = map[string]interface{}{"percent": float64(milestone)}
	}

	if importantActions[name] {
		state.Converted = true
	}

	state.Actions = append(state.Actions, schema.SessionAction{
		Name:      name,
		Data:      data,
		Timestamp: now,
	})
	return true
}

// milestoneFor maps a raw scroll percentage to the deepest milestone it
// reaches.
func milestoneFor(data map[string]interface{}) (int, bool) {
	raw, ok := data["percent"]
	if !ok {
		return 0, false
	}
	var percent float64
	switch v := raw.(type) {
	case float64:
		percent = v
	case int:
		percent = float64(v)
	case json.Number:
		percent, _ = v.Float64()
	default:
		return 0, false
	}

	best, found := 0, false
	for _, m := range scrollMilestones {
		if percent >= float64(m) {
			best, found = m, true
		}
	}
	return best, found
}

// Flush persists the session buffer to the database. Best-effort: the caller
// treats a returned error as log-only.
func (s *Service) Flush(ctx context.Context, sessionID string) error {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.persist(ctx, state)
}

// Destroy flushes the session and removes its live state.
func (s *Service) Destroy(ctx context.Context, sessionID string) error {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}
	if err := s.persist(ctx, state); err != nil {
		log.Printf("⚠️  Session %s final flush failed: %v", state.ID, err)
	}
	return s.remove(ctx, sessionID)
}

// SweepExpired persists and removes every session idle past the 30-minute
// window. Run hourly by the job manager.
func (s *Service) SweepExpired(ctx context.Context) (int, error) {
	ids, err := s.cache.SMembers(ctx, activeSet)
	if err != nil {
		return 0, fmt.Errorf("failed to list active sessions: %w", err)
	}

	swept := 0
	now := s.now()
	for _, id := range ids {
		state, err := s.load(ctx, id)
		if errors.Is(err, ErrSessionNotFound) {
			// Redis already dropped the key; clear the index entry.
			_ = s.cache.SRem(ctx, activeSet, id)
			continue
		}
		if err != nil {
			log.Printf("⚠️  Session sweep: load %s failed: %v", id, err)
			continue
		}
		if !state.expired(now) {
			continue
		}
		if err := s.persist(ctx, state); err != nil {
			log.Printf("⚠️  Session sweep: flush %s failed: %v", id, err)
		}
		if err := s.remove(ctx, id); err != nil {
			log.Printf("⚠️  Session sweep: remove %s failed: %v", id, err)
			continue
		}
		swept++
	}
	return swept, nil
}

// persist upserts the session into the lead_sessions table.
func (s *Service) persist(ctx context.Context, state *State) error {
	dwell := int(state.LastActiveAt.Sub(state.StartedAt).Seconds())

	existing, err := s.client.LeadSession.Query().
		Where(leadsession.SessionID(state.ID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		builder := s.client.LeadSession.Create().
			SetSessionID(state.ID).
			SetSource(string(state.Source)).
			SetDevice(state.Device).
			SetBrowser(state.Browser).
			SetActions(state.Actions).
			SetDwellSeconds(dwell).
			SetConverted(state.Converted).
			SetStartedAt(state.StartedAt).
			SetLastActiveAt(state.LastActiveAt)
		if state.ClinicID != nil {
			builder.SetClinicID(*state.ClinicID)
		}
		_, err = builder.Save(ctx)
	case err == nil:
		_, err = existing.Update().
			SetActions(state.Actions).
			SetDwellSeconds(dwell).
			SetConverted(state.Converted).
			SetLastActiveAt(state.LastActiveAt).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to persist session %s: %w", state.ID, err)
	}
	if s.metrics != nil {
		s.metrics.RecordSessionPersisted()
	}
	return nil
}

func (s *Service) load(ctx context.Context, sessionID string) (*State, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	raw, err := s.cache.Get(ctx, keyPrefix+sessionID)
	if err != nil {
		if cache.IsNil(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if state.ScrollSeen == nil {
		state.ScrollSeen = make(map[int]bool)
	}
	return &state, nil
}

func (s *Service) save(ctx context.Context, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, keyPrefix+state.ID, string(data), retention); err != nil {
		return err
	}
	return s.cache.SAdd(ctx, activeSet, state.ID)
}

func (s *Service) remove(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, keyPrefix+sessionID); err != nil {
		return err
	}
	return s.cache.SRem(ctx, activeSet, sessionID)
}

func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
