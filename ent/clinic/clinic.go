// Code generated by ent, DO NOT EDIT.

package clinic

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the clinic type in the database.
	Label = "clinic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldPostalCode holds the string denoting the postal_code field in the database.
	FieldPostalCode = "postal_code"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldWebsite holds the string denoting the website field in the database.
	FieldWebsite = "website"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldPlaceID holds the string denoting the place_id field in the database.
	FieldPlaceID = "place_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldServices holds the string denoting the services field in the database.
	FieldServices = "services"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldFeatures holds the string denoting the features field in the database.
	FieldFeatures = "features"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldVerified holds the string denoting the verified field in the database.
	FieldVerified = "verified"
	// FieldIndexed holds the string denoting the indexed field in the database.
	FieldIndexed = "indexed"
	// FieldRatingAvg holds the string denoting the rating_avg field in the database.
	FieldRatingAvg = "rating_avg"
	// FieldReviewCount holds the string denoting the review_count field in the database.
	FieldReviewCount = "review_count"
	// FieldClicks30d holds the string denoting the clicks_30d field in the database.
	FieldClicks30d = "clicks_30d"
	// FieldCalls30d holds the string denoting the calls_30d field in the database.
	FieldCalls30d = "calls_30d"
	// FieldEngagementScore holds the string denoting the engagement_score field in the database.
	FieldEngagementScore = "engagement_score"
	// FieldEngagementStatus holds the string denoting the engagement_status field in the database.
	FieldEngagementStatus = "engagement_status"
	// FieldEngagementUpdatedAt holds the string denoting the engagement_updated_at field in the database.
	FieldEngagementUpdatedAt = "engagement_updated_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeReviews holds the string denoting the reviews edge name in mutations.
	EdgeReviews = "reviews"
	// EdgeContacts holds the string denoting the contacts edge name in mutations.
	EdgeContacts = "contacts"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// Table holds the table name of the clinic in the database.
	Table = "clinics"
	// ReviewsTable is the table that holds the reviews relation/edge.
	ReviewsTable = "reviews"
	// ReviewsInverseTable is the table name for the Review entity.
	// It exists in this package in order to avoid circular dependency with the "review" package.
	ReviewsInverseTable = "reviews"
	// ReviewsColumn is the table column denoting the reviews relation/edge.
	ReviewsColumn = "clinic_id"
	// ContactsTable is the table that holds the contacts relation/edge.
	ContactsTable = "contacts"
	// ContactsInverseTable is the table name for the Contact entity.
	// It exists in this package in order to avoid circular dependency with the "contact" package.
	ContactsInverseTable = "contacts"
	// ContactsColumn is the table column denoting the contacts relation/edge.
	ContactsColumn = "clinic_id"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "lead_sessions"
	// SessionsInverseTable is the table name for the LeadSession entity.
	// It exists in this package in order to avoid circular dependency with the "leadsession" package.
	SessionsInverseTable = "lead_sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "clinic_id"
)

// Columns holds all SQL columns for clinic fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldSlug,
	FieldCity,
	FieldState,
	FieldAddress,
	FieldPostalCode,
	FieldPhone,
	FieldEmail,
	FieldWebsite,
	FieldLatitude,
	FieldLongitude,
	FieldPlaceID,
	FieldDescription,
	FieldServices,
	FieldTier,
	FieldFeatures,
	FieldStatus,
	FieldVerified,
	FieldIndexed,
	FieldRatingAvg,
	FieldReviewCount,
	FieldClicks30d,
	FieldCalls30d,
	FieldEngagementScore,
	FieldEngagementStatus,
	FieldEngagementUpdatedAt,
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
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// CityValidator is a validator for the "city" field. It is called by the builders before save.
	CityValidator func(string) error
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// DefaultVerified holds the default value on creation for the "verified" field.
	DefaultVerified bool
	// DefaultIndexed holds the default value on creation for the "indexed" field.
	DefaultIndexed bool
	// DefaultRatingAvg holds the default value on creation for the "rating_avg" field.
	DefaultRatingAvg float64
	// DefaultReviewCount holds the default value on creation for the "review_count" field.
	DefaultReviewCount int
	// ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	ReviewCountValidator func(int) error
	// DefaultClicks30d holds the default value on creation for the "clicks_30d" field.
	DefaultClicks30d int
	// Clicks30dValidator is a validator for the "clicks_30d" field. It is called by the builders before save.
	Clicks30dValidator func(int) error
	// DefaultCalls30d holds the default value on creation for the "calls_30d" field.
	DefaultCalls30d int
	// Calls30dValidator is a validator for the "calls_30d" field. It is called by the builders before save.
	Calls30dValidator func(int) error
	// DefaultEngagementScore holds the default value on creation for the "engagement_score" field.
	DefaultEngagementScore int
	// EngagementScoreValidator is a validator for the "engagement_score" field. It is called by the builders before save.
	EngagementScoreValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Tier defines the type for the "tier" enum field.
type Tier string

// TierFree is the default value of the Tier enum.
const DefaultTier = TierFree

// Tier values.
const (
	TierFree     Tier = "free"
	TierStandard Tier = "standard"
	TierAdvanced Tier = "advanced"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierFree, TierStandard, TierAdvanced:
		return nil
	default:
		return fmt.Errorf("clinic: invalid enum value for tier field: %q", t)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive  Status = "active"
	StatusPaused  Status = "paused"
	StatusFlagged Status = "flagged"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusPaused, StatusFlagged:
		return nil
	default:
		return fmt.Errorf("clinic: invalid enum value for status field: %q", s)
	}
}

// EngagementStatus defines the type for the "engagement_status" enum field.
type EngagementStatus string

// EngagementStatusNone is the default value of the EngagementStatus enum.
const DefaultEngagementStatus = EngagementStatusNone

// EngagementStatus values.
const (
	EngagementStatusEngaged EngagementStatus = "engaged"
	EngagementStatusLow     EngagementStatus = "low"
	EngagementStatusNone    EngagementStatus = "none"
)

func (es EngagementStatus) String() string {
	return string(es)
}

// EngagementStatusValidator is a validator for the "engagement_status" field enum values. It is called by the builders before save.
func EngagementStatusValidator(es EngagementStatus) error {
	switch es {
	case EngagementStatusEngaged, EngagementStatusLow, EngagementStatusNone:
		return nil
	default:
		return fmt.Errorf("clinic: invalid enum value for engagement_status field: %q", es)
	}
}

// OrderOption defines the ordering options for the Clinic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByPostalCode orders the results by the postal_code field.
func ByPostalCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostalCode, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByWebsite orders the results by the website field.
func ByWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsite, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByPlaceID orders the results by the place_id field.
func ByPlaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaceID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByVerified orders the results by the verified field.
func ByVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerified, opts...).ToFunc()
}

// ByIndexed orders the results by the indexed field.
func ByIndexed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndexed, opts...).ToFunc()
}

// ByRatingAvg orders the results by the rating_avg field.
func ByRatingAvg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatingAvg, opts...).ToFunc()
}

// ByReviewCount orders the results by the review_count field.
func ByReviewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewCount, opts...).ToFunc()
}

// ByClicks30d orders the results by the clicks_30d field.
func ByClicks30d(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClicks30d, opts...).ToFunc()
}

// ByCalls30d orders the results by the calls_30d field.
func ByCalls30d(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalls30d, opts...).ToFunc()
}

// ByEngagementScore orders the results by the engagement_score field.
func ByEngagementScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementScore, opts...).ToFunc()
}

// ByEngagementStatus orders the results by the engagement_status field.
func ByEngagementStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementStatus, opts...).ToFunc()
}

// ByEngagementUpdatedAt orders the results by the engagement_updated_at field.
func ByEngagementUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementUpdatedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByReviewsCount orders the results by reviews count.
func ByReviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReviewsStep(), opts...)
	}
}

// ByReviews orders the results by reviews terms.
func ByReviews(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReviewsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByContactsCount orders the results by contacts count.
func ByContactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newContactsStep(), opts...)
	}
}

// ByContacts orders the results by contacts terms.
func ByContacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newReviewsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReviewsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReviewsTable, ReviewsColumn),
	)
}
func newContactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContactsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContactsTable, ContactsColumn),
	)
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
