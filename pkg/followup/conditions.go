package followup

import (
	"time"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/contact"
)

// EngagementBucket classifies a contact's email engagement.
type EngagementBucket string

const (
	EngagementHigh   EngagementBucket = "high"
	EngagementMedium EngagementBucket = "medium"
	EngagementLow    EngagementBucket = "low"
)

// BucketFor derives the email engagement bucket from raw counters. The
// bucket is never stored; it is recomputed on every evaluation. A contact
// with zero interactions is always low.
func BucketFor(opens, clicks, totalInteractions int) EngagementBucket {
	if totalInteractions <= 0 {
		return EngagementLow
	}
	score := (float64(opens)*0.6 + float64(clicks)*0.4) / float64(totalInteractions)
	switch {
	case score >= 0.5:
		return EngagementHigh
	case score >= 0.2:
		return EngagementMedium
	default:
		return EngagementLow
	}
}

// Condition is one AND-combined predicate inside a rule. Each condition kind
// is its own variant so that adding a kind is a compile-time-checked change
// in the matcher below.
type Condition interface {
	isCondition()
}

// DaysSinceContactAtLeast holds when at least Days days have passed since the
// contact was last reached. Contacts that were never reached count from their
// creation time.
type DaysSinceContactAtLeast struct {
	Days int
}

// LeadScoreBetween holds when the lead score is within [Min, Max] inclusive.
type LeadScoreBetween struct {
	Min, Max int
}

// StageIn holds when the pipeline stage is one of Stages.
type StageIn struct {
	Stages []contact.Stage
}

// PriorityIn holds when the priority is one of Priorities.
type PriorityIn struct {
	Priorities []contact.Priority
}

// StatusIn holds when the contact status is one of Statuses.
type StatusIn struct {
	Statuses []contact.Status
}

// EngagementIs holds when the derived email engagement bucket equals Bucket.
type EngagementIs struct {
	Bucket EngagementBucket
}

func (DaysSinceContactAtLeast) isCondition() {}
func (LeadScoreBetween) isCondition()        {}
func (StageIn) isCondition()                 {}
func (PriorityIn) isCondition()              {}
func (StatusIn) isCondition()                {}
func (EngagementIs) isCondition()            {}

// matches evaluates a single condition against a contact. The type switch is
// exhaustive over the variants above; an unknown variant never matches.
func matches(cond Condition, ct *ent.Contact, now time.Time) bool {
	switch c := cond.(type) {
	case DaysSinceContactAtLeast:
		// Never-contacted contacts count from creation.
		since := ct.CreatedAt
		if ct.LastContactedAt != nil {
			since = *ct.LastContactedAt
		}
		return now.Sub(since) >= time.Duration(c.Days)*24*time.Hour
	case LeadScoreBetween:
		return ct.LeadScore >= c.Min && ct.LeadScore <= c.Max
	case StageIn:
		for _, s := range c.Stages {
			if ct.Stage == s {
				return true
			}
		}
		return false
	case PriorityIn:
		for _, p := range c.Priorities {
			if ct.Priority == p {
				return true
			}
		}
		return false
	case StatusIn:
		for _, s := range c.Statuses {
			if ct.Status == s {
				return true
			}
		}
		return false
	case EngagementIs:
		return BucketFor(ct.EmailOpens, ct.EmailClicks, ct.TotalInteractions) == c.Bucket
	default:
		return false
	}
}
