// Code generated by ent, DO NOT EDIT.

package review

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the review type in the database.
	Label = "review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldAuthorName holds the string denoting the author_name field in the database.
	FieldAuthorName = "author_name"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldHelpfulCount holds the string denoting the helpful_count field in the database.
	FieldHelpfulCount = "helpful_count"
	// FieldReportCount holds the string denoting the report_count field in the database.
	FieldReportCount = "report_count"
	// FieldModeratedAt holds the string denoting the moderated_at field in the database.
	FieldModeratedAt = "moderated_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeClinic holds the string denoting the clinic edge name in mutations.
	EdgeClinic = "clinic"
	// Table holds the table name of the review in the database.
	Table = "reviews"
	// ClinicTable is the table that holds the clinic relation/edge.
	ClinicTable = "reviews"
	// ClinicInverseTable is the table name for the Clinic entity.
	// It exists in this package in order to avoid circular dependency with the "clinic" package.
	ClinicInverseTable = "clinics"
	// ClinicColumn is the table column denoting the clinic relation/edge.
	ClinicColumn = "clinic_id"
)

// Columns holds all SQL columns for review fields.
var Columns = []string{
	FieldID,
	FieldClinicID,
	FieldRating,
	FieldAuthorName,
	FieldBody,
	FieldStatus,
	FieldHelpfulCount,
	FieldReportCount,
	FieldModeratedAt,
	FieldCreatedAt,
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
	// ClinicIDValidator is a validator for the "clinic_id" field. It is called by the builders before save.
	ClinicIDValidator func(int) error
	// RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	RatingValidator func(int) error
	// AuthorNameValidator is a validator for the "author_name" field. It is called by the builders before save.
	AuthorNameValidator func(string) error
	// BodyValidator is a validator for the "body" field. It is called by the builders before save.
	BodyValidator func(string) error
	// DefaultHelpfulCount holds the default value on creation for the "helpful_count" field.
	DefaultHelpfulCount int
	// HelpfulCountValidator is a validator for the "helpful_count" field. It is called by the builders before save.
	HelpfulCountValidator func(int) error
	// DefaultReportCount holds the default value on creation for the "report_count" field.
	DefaultReportCount int
	// ReportCountValidator is a validator for the "report_count" field. It is called by the builders before save.
	ReportCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusPublished, StatusRejected:
		return nil
	default:
		return fmt.Errorf("review: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Review queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByAuthorName orders the results by the author_name field.
func ByAuthorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorName, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByHelpfulCount orders the results by the helpful_count field.
func ByHelpfulCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHelpfulCount, opts...).ToFunc()
}

// ByReportCount orders the results by the report_count field.
func ByReportCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportCount, opts...).ToFunc()
}

// ByModeratedAt orders the results by the moderated_at field.
func ByModeratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModeratedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByClinicField orders the results by clinic field.
func ByClinicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClinicStep(), sql.OrderByField(field, opts...))
	}
}
func newClinicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClinicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClinicTable, ClinicColumn),
	)
}
