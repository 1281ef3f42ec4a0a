package followup

import (
	"time"

	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/followuptask"
)

// Frequency governs how often a rule may re-fire for the same contact.
type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Lookback returns the dedup window for a frequency. The second return is
// false for FrequencyOnce, meaning the lookback is unbounded: one firing per
// contact, ever.
func (f Frequency) Lookback() (time.Duration, bool) {
	switch f {
	case FrequencyDaily:
		return 24 * time.Hour, true
	case FrequencyWeekly:
		return 168 * time.Hour, true
	case FrequencyMonthly:
		return 720 * time.Hour, true
	default:
		return 0, false
	}
}

// Action is one task to materialize when a rule matches.
type Action struct {
	Type       followuptask.Type
	Title      string
	Template   string
	Priority   followuptask.Priority
	DelayHours int
}

// Rule is a named set of AND-combined conditions plus the actions to
// materialize on match.
type Rule struct {
	Name       string
	Conditions []Condition
	Actions    []Action
	Frequency  Frequency
}

// DefaultRules is the fixed, ordered follow-up rule table. Order matters only
// for readability and reporting; every rule is evaluated independently.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "new_lead_welcome",
			Conditions: []Condition{
				StageIn{Stages: []contact.Stage{contact.StageNew}},
			},
			Actions: []Action{
				{
					Type:       followuptask.TypeEmail,
					Title:      "Send welcome email",
					Template:   "welcome_intro",
					Priority:   followuptask.PriorityHigh,
					DelayHours: 1,
				},
				{
					Type:       followuptask.TypeEmail,
					Title:      "Send day-3 check-in email",
					Template:   "welcome_checkin",
					Priority:   followuptask.PriorityMedium,
					DelayHours: 72,
				},
				{
					Type:       followuptask.TypeCall,
					Title:      "Week-one welcome call",
					Priority:   followuptask.PriorityMedium,
					DelayHours: 168,
				},
			},
			Frequency: FrequencyOnce,
		},
		{
			Name: "stale_lead_outreach",
			Conditions: []Condition{
				StageIn{Stages: []contact.Stage{contact.StageNew, contact.StageContacted}},
				StatusIn{Statuses: []contact.Status{contact.StatusActive}},
				DaysSinceContactAtLeast{Days: 3},
			},
			Actions: []Action{
				{
					Type:       followuptask.TypeCall,
					Title:      "Call lead gone quiet for 3+ days",
					Priority:   followuptask.PriorityHigh,
					DelayHours: 0,
				},
			},
			Frequency: FrequencyDaily,
		},
		{
			Name: "hot_lead_fast_track",
			Conditions: []Condition{
				PriorityIn{Priorities: []contact.Priority{contact.PriorityHigh, contact.PriorityUrgent}},
				LeadScoreBetween{Min: 80, Max: 100},
				StatusIn{Statuses: []contact.Status{contact.StatusActive}},
			},
			Actions: []Action{
				{
					Type:       followuptask.TypeCall,
					Title:      "Fast-track call for high-value lead",
					Priority:   followuptask.PriorityUrgent,
					DelayHours: 2,
				},
			},
			Frequency: FrequencyDaily,
		},
		{
			Name: "qualified_proposal_push",
			Conditions: []Condition{
				StageIn{Stages: []contact.Stage{contact.StageQualified}},
				LeadScoreBetween{Min: 60, Max: 100},
			},
			Actions: []Action{
				{
					Type:       followuptask.TypeEmail,
					Title:      "Send listing upgrade proposal",
					Template:   "upgrade_proposal",
					Priority:   followuptask.PriorityHigh,
					DelayHours: 4,
				},
				{
					Type:       followuptask.TypeMeeting,
					Title:      "Book proposal walkthrough",
					Priority:   followuptask.PriorityMedium,
					DelayHours: 48,
				},
			},
			Frequency: FrequencyWeekly,
		},
		{
			Name: "nurture_low_engagement",
			Conditions: []Condition{
				StageIn{Stages: []contact.Stage{contact.StageContacted, contact.StageNurturing}},
				EngagementIs{Bucket: EngagementLow},
				StatusIn{Statuses: []contact.Status{contact.StatusActive}},
			},
			Actions: []Action{
				{
					Type:       followuptask.TypeEmail,
					Title:      "Send nurture content email",
					Template:   "nurture_value",
					Priority:   followuptask.PriorityLow,
					DelayHours: 24,
				},
			},
			Frequency: FrequencyWeekly,
		},
		{
			Name: "reengage_cold_contact",
			Conditions: []Condition{
				DaysSinceContactAtLeast{Days: 30},
				StatusIn{Statuses: []contact.Status{contact.StatusActive}},
				StageIn{Stages: []contact.Stage{
					contact.StageContacted, contact.StageQualified,
					contact.StageProposal, contact.StageNurturing,
				}},
			},
			Actions: []Action{
				{
					Type:       followuptask.TypeEmail,
					Title:      "Re-engage cold contact",
					Template:   "reengage_cold",
					Priority:   followuptask.PriorityLow,
					DelayHours: 12,
				},
			},
			Frequency: FrequencyMonthly,
		},
	}
}
