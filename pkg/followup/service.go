// Package followup evaluates the declarative follow-up rule table against CRM
// contacts and materializes matching rule actions as follow-up tasks.
package followup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/followuptask"
	"github.com/menshealthfinder/api/pkg/metrics"
)

// ErrContactNotFound is returned when the contact doesn't exist.
var ErrContactNotFound = errors.New("contact not found")

// Service runs rule evaluation for contacts.
type Service struct {
	client  *ent.Client
	rules   []Rule
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService creates a rule engine over the default rule table.
func NewService(client *ent.Client) *Service {
	return NewServiceWithRules(client, DefaultRules())
}

// NewServiceWithRules creates a rule engine with a custom rule table.
func NewServiceWithRules(client *ent.Client, rules []Rule) *Service {
	return &Service{
		client: client,
		rules:  rules,
		now:    time.Now,
	}
}

// SetMetrics attaches the Prometheus counters.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// EvaluationResult summarizes one contact's evaluation.
type EvaluationResult struct {
	ContactID    int      `json:"contact_id"`
	MatchedRules []string `json:"matched_rules"`
	TasksCreated int      `json:"tasks_created"`
}

// BatchResult summarizes a batch evaluation run.
type BatchResult struct {
	ContactsEvaluated int                `json:"contacts_evaluated"`
	ContactsFailed    int                `json:"contacts_failed"`
	TasksCreated      int                `json:"tasks_created"`
	Results           []EvaluationResult `json:"results,omitempty"`
}

// EvaluateContact runs every rule against one contact and creates tasks for
// each matching rule's actions. A rule matches only if all of its conditions
// hold. For non-once frequencies the rule is skipped when it already produced
// a task for this contact within the frequency's lookback window; this soft
// time-window check is the engine's only idempotence guarantee.
func (s *Service) EvaluateContact(ctx context.Context, contactID int) (*EvaluationResult, error) {
	ct, err := s.client.Contact.Query().Where(contact.ID(contactID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	return s.evaluate(ctx, ct)
}

func (s *Service) evaluate(ctx context.Context, ct *ent.Contact) (*EvaluationResult, error) {
	now := s.now()
	result := &EvaluationResult{ContactID: ct.ID}

	for _, rule := range s.rules {
		if !s.ruleMatches(rule, ct, now) {
			continue
		}

		fired, err := s.firedWithinLookback(ctx, ct.ID, rule)
		if err != nil {
			return nil, fmt.Errorf("rule %s: lookback check failed: %w", rule.Name, err)
		}
		if fired {
			continue
		}

		// Match is boolean: every action materializes, or the rule is a no-op.
		created, err := s.materialize(ctx, ct.ID, rule, now)
		if err != nil {
			return nil, fmt.Errorf("rule %s: task creation failed: %w", rule.Name, err)
		}

		result.MatchedRules = append(result.MatchedRules, rule.Name)
		result.TasksCreated += created
	}

	if s.metrics != nil && result.TasksCreated > 0 {
		s.metrics.RecordFollowUpTasks(result.TasksCreated)
	}

	return result, nil
}

// ruleMatches reports whether every condition of the rule holds.
func (s *Service) ruleMatches(rule Rule, ct *ent.Contact, now time.Time) bool {
	for _, cond := range rule.Conditions {
		if !matches(cond, ct, now) {
			return false
		}
	}
	return len(rule.Conditions) > 0
}

// firedWithinLookback reports whether the rule already produced a task for
// this contact inside its frequency window. FrequencyOnce checks all time.
func (s *Service) firedWithinLookback(ctx context.Context, contactID int, rule Rule) (bool, error) {
	q := s.client.FollowUpTask.Query().
		Where(
			followuptask.ContactID(contactID),
			followuptask.RuleName(rule.Name),
		)

	if window, bounded := rule.Frequency.Lookback(); bounded {
		q = q.Where(followuptask.CreatedAtGTE(s.now().Add(-window)))
	}

	count, err := q.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// materialize creates one task per rule action, due time offset by the
// action's delay.
func (s *Service) materialize(ctx context.Context, contactID int, rule Rule, now time.Time) (int, error) {
	created := 0
	for _, action := range rule.Actions {
		builder := s.client.FollowUpTask.Create().
			SetContactID(contactID).
			SetRuleName(rule.Name).
			SetType(action.Type).
			SetTitle(action.Title).
			SetPriority(action.Priority).
			SetDueAt(now.Add(time.Duration(action.DelayHours) * time.Hour))
		if action.Template != "" {
			builder.SetTemplate(action.Template)
		}
		if _, err := builder.Save(ctx); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// EvaluateClinicContacts evaluates every active contact of a clinic
// sequentially. A failure on one contact is logged and does not abort the
// rest of the batch.
func (s *Service) EvaluateClinicContacts(ctx context.Context, clinicID int) (*BatchResult, error) {
	contacts, err := s.client.Contact.Query().
		Where(
			contact.ClinicID(clinicID),
			contact.StatusEQ(contact.StatusActive),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return s.evaluateBatch(ctx, contacts), nil
}

// EvaluateAllContacts evaluates every active contact in the system. Used by
// the daily cron job and the manual audit trigger.
func (s *Service) EvaluateAllContacts(ctx context.Context) (*BatchResult, error) {
	contacts, err := s.client.Contact.Query().
		Where(contact.StatusEQ(contact.StatusActive)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return s.evaluateBatch(ctx, contacts), nil
}

func (s *Service) evaluateBatch(ctx context.Context, contacts []*ent.Contact) *BatchResult {
	batch := &BatchResult{}
	for _, ct := range contacts {
		res, err := s.evaluate(ctx, ct)
		if err != nil {
			log.Printf("⚠️  Follow-up evaluation failed for contact %d: %v", ct.ID, err)
			batch.ContactsFailed++
			continue
		}
		batch.ContactsEvaluated++
		batch.TasksCreated += res.TasksCreated
		if res.TasksCreated > 0 {
			batch.Results = append(batch.Results, *res)
		}
	}
	return batch
}
