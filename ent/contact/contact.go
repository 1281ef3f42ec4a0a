// Code generated by ent, DO NOT EDIT.

package contact

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the contact type in the database.
	Label = "contact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLeadScore holds the string denoting the lead_score field in the database.
	FieldLeadScore = "lead_score"
	// FieldTotalInteractions holds the string denoting the total_interactions field in the database.
	FieldTotalInteractions = "total_interactions"
	// FieldEmailOpens holds the string denoting the email_opens field in the database.
	FieldEmailOpens = "email_opens"
	// FieldEmailClicks holds the string denoting the email_clicks field in the database.
	FieldEmailClicks = "email_clicks"
	// FieldWebsiteVisits holds the string denoting the website_visits field in the database.
	FieldWebsiteVisits = "website_visits"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldLastContactedAt holds the string denoting the last_contacted_at field in the database.
	FieldLastContactedAt = "last_contacted_at"
	// FieldStageChangedAt holds the string denoting the stage_changed_at field in the database.
	FieldStageChangedAt = "stage_changed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeClinic holds the string denoting the clinic edge name in mutations.
	EdgeClinic = "clinic"
	// EdgeActivities holds the string denoting the activities edge name in mutations.
	EdgeActivities = "activities"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// Table holds the table name of the contact in the database.
	Table = "contacts"
	// ClinicTable is the table that holds the clinic relation/edge.
	ClinicTable = "contacts"
	// ClinicInverseTable is the table name for the Clinic entity.
	// It exists in this package in order to avoid circular dependency with the "clinic" package.
	ClinicInverseTable = "clinics"
	// ClinicColumn is the table column denoting the clinic relation/edge.
	ClinicColumn = "clinic_id"
	// ActivitiesTable is the table that holds the activities relation/edge.
	ActivitiesTable = "activities"
	// ActivitiesInverseTable is the table name for the Activity entity.
	// It exists in this package in order to avoid circular dependency with the "activity" package.
	ActivitiesInverseTable = "activities"
	// ActivitiesColumn is the table column denoting the activities relation/edge.
	ActivitiesColumn = "contact_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "follow_up_tasks"
	// TasksInverseTable is the table name for the FollowUpTask entity.
	// It exists in this package in order to avoid circular dependency with the "followuptask" package.
	TasksInverseTable = "follow_up_tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "contact_id"
)

// Columns holds all SQL columns for contact fields.
var Columns = []string{
	FieldID,
	FieldClinicID,
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldCompany,
	FieldStage,
	FieldPriority,
	FieldStatus,
	FieldLeadScore,
	FieldTotalInteractions,
	FieldEmailOpens,
	FieldEmailClicks,
	FieldWebsiteVisits,
	FieldSource,
	FieldTags,
	FieldLastContactedAt,
	FieldStageChangedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultLeadScore holds the default value on creation for the "lead_score" field.
	DefaultLeadScore int
	// LeadScoreValidator is a validator for the "lead_score" field. It is called by the builders before save.
	LeadScoreValidator func(int) error
	// DefaultTotalInteractions holds the default value on creation for the "total_interactions" field.
	DefaultTotalInteractions int
	// TotalInteractionsValidator is a validator for the "total_interactions" field. It is called by the builders before save.
	TotalInteractionsValidator func(int) error
	// DefaultEmailOpens holds the default value on creation for the "email_opens" field.
	DefaultEmailOpens int
	// EmailOpensValidator is a validator for the "email_opens" field. It is called by the builders before save.
	EmailOpensValidator func(int) error
	// DefaultEmailClicks holds the default value on creation for the "email_clicks" field.
	DefaultEmailClicks int
	// EmailClicksValidator is a validator for the "email_clicks" field. It is called by the builders before save.
	EmailClicksValidator func(int) error
	// DefaultWebsiteVisits holds the default value on creation for the "website_visits" field.
	DefaultWebsiteVisits int
	// WebsiteVisitsValidator is a validator for the "website_visits" field. It is called by the builders before save.
	WebsiteVisitsValidator func(int) error
	// DefaultStageChangedAt holds the default value on creation for the "stage_changed_at" field.
	DefaultStageChangedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Stage defines the type for the "stage" enum field.
type Stage string

// StageNew is the default value of the Stage enum.
const DefaultStage = StageNew

// Stage values.
const (
	StageNew         Stage = "new"
	StageContacted   Stage = "contacted"
	StageQualified   Stage = "qualified"
	StageProposal    Stage = "proposal"
	StageNegotiation Stage = "negotiation"
	StageClosedWon   Stage = "closed_won"
	StageClosedLost  Stage = "closed_lost"
	StageNurturing   Stage = "nurturing"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StageNew, StageContacted, StageQualified, StageProposal, StageNegotiation, StageClosedWon, StageClosedLost, StageNurturing:
		return nil
	default:
		return fmt.Errorf("contact: invalid enum value for stage field: %q", s)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return fmt.Errorf("contact: invalid enum value for priority field: %q", pr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusArchived:
		return nil
	default:
		return fmt.Errorf("contact: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Contact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByCompany orders the results by the company field.
func ByCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompany, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLeadScore orders the results by the lead_score field.
func ByLeadScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadScore, opts...).ToFunc()
}

// ByTotalInteractions orders the results by the total_interactions field.
func ByTotalInteractions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalInteractions, opts...).ToFunc()
}

// ByEmailOpens orders the results by the email_opens field.
func ByEmailOpens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailOpens, opts...).ToFunc()
}

// ByEmailClicks orders the results by the email_clicks field.
func ByEmailClicks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailClicks, opts...).ToFunc()
}

// ByWebsiteVisits orders the results by the website_visits field.
func ByWebsiteVisits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsiteVisits, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByLastContactedAt orders the results by the last_contacted_at field.
func ByLastContactedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastContactedAt, opts...).ToFunc()
}

// ByStageChangedAt orders the results by the stage_changed_at field.
func ByStageChangedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageChangedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByClinicField orders the results by clinic field.
func ByClinicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClinicStep(), sql.OrderByField(field, opts...))
	}
}

// ByActivitiesCount orders the results by activities count.
func ByActivitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newActivitiesStep(), opts...)
	}
}

// ByActivities orders the results by activities terms.
func ByActivities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActivitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newClinicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClinicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClinicTable, ClinicColumn),
	)
}
func newActivitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActivitiesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActivitiesTable, ActivitiesColumn),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
