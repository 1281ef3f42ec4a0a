// Code generated by ent, DO NOT EDIT.

package leadsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/menshealthfinder/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldSessionID, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldClinicID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldSource, v))
}

// Device applies equality check predicate on the "device" field. It's identical to DeviceEQ.
func Device(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldDevice, v))
}

// Browser applies equality check predicate on the "browser" field. It's identical to BrowserEQ.
func Browser(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldBrowser, v))
}

// DwellSeconds applies equality check predicate on the "dwell_seconds" field. It's identical to DwellSecondsEQ.
func DwellSeconds(v int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldDwellSeconds, v))
}

// Converted applies equality check predicate on the "converted" field. It's identical to ConvertedEQ.
func Converted(v bool) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldConverted, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldStartedAt, v))
}

// LastActiveAt applies equality check predicate on the "last_active_at" field. It's identical to LastActiveAtEQ.
func LastActiveAt(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldLastActiveAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldContainsFold(FieldSessionID, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDIsNil applies the IsNil predicate on the "clinic_id" field.
func ClinicIDIsNil() predicate.LeadSession {
	return predicate.LeadSession(sql.FieldIsNull(FieldClinicID))
}

// ClinicIDNotNil applies the NotNil predicate on the "clinic_id" field.
func ClinicIDNotNil() predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNotNull(FieldClinicID))
}

// ActionsIsNil applies the IsNil predicate on the "actions" field.
func ActionsIsNil() predicate.LeadSession {
	return predicate.LeadSession(sql.FieldIsNull(FieldActions))
}

// ActionsNotNil applies the NotNil predicate on the "actions" field.
func ActionsNotNil() predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNotNull(FieldActions))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldContainsFold(FieldSource, v))
}

// DeviceEQ applies the EQ predicate on the "device" field.
func DeviceEQ(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldDevice, v))
}

// DeviceNEQ applies the NEQ predicate on the "device" field.
func DeviceNEQ(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNEQ(FieldDevice, v))
}

// DeviceIn applies the In predicate on the "device" field.
func DeviceIn(vs ...string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldIn(FieldDevice, vs...))
}

// DeviceNotIn applies the NotIn predicate on the "device" field.
func DeviceNotIn(vs ...string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNotIn(FieldDevice, vs...))
}

// DeviceGT applies the GT predicate on the "device" field.
func DeviceGT(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGT(FieldDevice, v))
}

// DeviceGTE applies the GTE predicate on the "device" field.
func DeviceGTE(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGTE(FieldDevice, v))
}

// DeviceLT applies the LT predicate on the "device" field.
func DeviceLT(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLT(FieldDevice, v))
}

// DeviceLTE applies the LTE predicate on the "device" field.
func DeviceLTE(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLTE(FieldDevice, v))
}

// DeviceContains applies the Contains predicate on the "device" field.
func DeviceContains(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldContains(FieldDevice, v))
}

// DeviceHasPrefix applies the HasPrefix predicate on the "device" field.
func DeviceHasPrefix(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldHasPrefix(FieldDevice, v))
}

// DeviceHasSuffix applies the HasSuffix predicate on the "device" field.
func DeviceHasSuffix(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldHasSuffix(FieldDevice, v))
}

// DeviceIsNil applies the IsNil predicate on the "device" field.
func DeviceIsNil() predicate.LeadSession {
	return predicate.LeadSession(sql.FieldIsNull(FieldDevice))
}

// DeviceNotNil applies the NotNil predicate on the "device" field.
func DeviceNotNil() predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNotNull(FieldDevice))
}

// DeviceEqualFold applies the EqualFold predicate on the "device" field.
func DeviceEqualFold(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEqualFold(FieldDevice, v))
}

// DeviceContainsFold applies the ContainsFold predicate on the "device" field.
func DeviceContainsFold(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldContainsFold(FieldDevice, v))
}

// BrowserEQ applies the EQ predicate on the "browser" field.
func BrowserEQ(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldBrowser, v))
}

// BrowserNEQ applies the NEQ predicate on the "browser" field.
func BrowserNEQ(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNEQ(FieldBrowser, v))
}

// BrowserIn applies the In predicate on the "browser" field.
func BrowserIn(vs ...string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldIn(FieldBrowser, vs...))
}

// BrowserNotIn applies the NotIn predicate on the "browser" field.
func BrowserNotIn(vs ...string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNotIn(FieldBrowser, vs...))
}

// BrowserGT applies the GT predicate on the "browser" field.
func BrowserGT(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGT(FieldBrowser, v))
}

// BrowserGTE applies the GTE predicate on the "browser" field.
func BrowserGTE(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGTE(FieldBrowser, v))
}

// BrowserLT applies the LT predicate on the "browser" field.
func BrowserLT(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLT(FieldBrowser, v))
}

// BrowserLTE applies the LTE predicate on the "browser" field.
func BrowserLTE(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLTE(FieldBrowser, v))
}

// BrowserContains applies the Contains predicate on the "browser" field.
func BrowserContains(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldContains(FieldBrowser, v))
}

// BrowserHasPrefix applies the HasPrefix predicate on the "browser" field.
func BrowserHasPrefix(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldHasPrefix(FieldBrowser, v))
}

// BrowserHasSuffix applies the HasSuffix predicate on the "browser" field.
func BrowserHasSuffix(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldHasSuffix(FieldBrowser, v))
}

// BrowserIsNil applies the IsNil predicate on the "browser" field.
func BrowserIsNil() predicate.LeadSession {
	return predicate.LeadSession(sql.FieldIsNull(FieldBrowser))
}

// BrowserNotNil applies the NotNil predicate on the "browser" field.
func BrowserNotNil() predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNotNull(FieldBrowser))
}

// BrowserEqualFold applies the EqualFold predicate on the "browser" field.
func BrowserEqualFold(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEqualFold(FieldBrowser, v))
}

// BrowserContainsFold applies the ContainsFold predicate on the "browser" field.
func BrowserContainsFold(v string) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldContainsFold(FieldBrowser, v))
}

// DwellSecondsEQ applies the EQ predicate on the "dwell_seconds" field.
func DwellSecondsEQ(v int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldDwellSeconds, v))
}

// DwellSecondsNEQ applies the NEQ predicate on the "dwell_seconds" field.
func DwellSecondsNEQ(v int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNEQ(FieldDwellSeconds, v))
}

// DwellSecondsIn applies the In predicate on the "dwell_seconds" field.
func DwellSecondsIn(vs ...int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldIn(FieldDwellSeconds, vs...))
}

// DwellSecondsNotIn applies the NotIn predicate on the "dwell_seconds" field.
func DwellSecondsNotIn(vs ...int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNotIn(FieldDwellSeconds, vs...))
}

// DwellSecondsGT applies the GT predicate on the "dwell_seconds" field.
func DwellSecondsGT(v int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGT(FieldDwellSeconds, v))
}

// DwellSecondsGTE applies the GTE predicate on the "dwell_seconds" field.
func DwellSecondsGTE(v int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGTE(FieldDwellSeconds, v))
}

// DwellSecondsLT applies the LT predicate on the "dwell_seconds" field.
func DwellSecondsLT(v int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLT(FieldDwellSeconds, v))
}

// DwellSecondsLTE applies the LTE predicate on the "dwell_seconds" field.
func DwellSecondsLTE(v int) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLTE(FieldDwellSeconds, v))
}

// ConvertedEQ applies the EQ predicate on the "converted" field.
func ConvertedEQ(v bool) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldConverted, v))
}

// ConvertedNEQ applies the NEQ predicate on the "converted" field.
func ConvertedNEQ(v bool) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNEQ(FieldConverted, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLTE(FieldStartedAt, v))
}

// LastActiveAtEQ applies the EQ predicate on the "last_active_at" field.
func LastActiveAtEQ(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldEQ(FieldLastActiveAt, v))
}

// LastActiveAtNEQ applies the NEQ predicate on the "last_active_at" field.
func LastActiveAtNEQ(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNEQ(FieldLastActiveAt, v))
}

// LastActiveAtIn applies the In predicate on the "last_active_at" field.
func LastActiveAtIn(vs ...time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldIn(FieldLastActiveAt, vs...))
}

// LastActiveAtNotIn applies the NotIn predicate on the "last_active_at" field.
func LastActiveAtNotIn(vs ...time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldNotIn(FieldLastActiveAt, vs...))
}

// LastActiveAtGT applies the GT predicate on the "last_active_at" field.
func LastActiveAtGT(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGT(FieldLastActiveAt, v))
}

// LastActiveAtGTE applies the GTE predicate on the "last_active_at" field.
func LastActiveAtGTE(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldGTE(FieldLastActiveAt, v))
}

// LastActiveAtLT applies the LT predicate on the "last_active_at" field.
func LastActiveAtLT(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLT(FieldLastActiveAt, v))
}

// LastActiveAtLTE applies the LTE predicate on the "last_active_at" field.
func LastActiveAtLTE(v time.Time) predicate.LeadSession {
	return predicate.LeadSession(sql.FieldLTE(FieldLastActiveAt, v))
}

// HasClinic applies the HasEdge predicate on the "clinic" edge.
func HasClinic() predicate.LeadSession {
	return predicate.LeadSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClinicTable, ClinicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClinicWith applies the HasEdge predicate on the "clinic" edge with a given conditions (other predicates).
func HasClinicWith(preds ...predicate.Clinic) predicate.LeadSession {
	return predicate.LeadSession(func(s *sql.Selector) {
		step := newClinicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LeadSession) predicate.LeadSession {
	return predicate.LeadSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LeadSession) predicate.LeadSession {
	return predicate.LeadSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LeadSession) predicate.LeadSession {
	return predicate.LeadSession(sql.NotPredicates(p))
}
