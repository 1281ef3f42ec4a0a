// Code generated by ent, DO NOT EDIT.

package review

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/menshealthfinder/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldID, id))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldClinicID, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldRating, v))
}

// AuthorName applies equality check predicate on the "author_name" field. It's identical to AuthorNameEQ.
func AuthorName(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldAuthorName, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldBody, v))
}

// HelpfulCount applies equality check predicate on the "helpful_count" field. It's identical to HelpfulCountEQ.
func HelpfulCount(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldHelpfulCount, v))
}

// ReportCount applies equality check predicate on the "report_count" field. It's identical to ReportCountEQ.
func ReportCount(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldReportCount, v))
}

// ModeratedAt applies equality check predicate on the "moderated_at" field. It's identical to ModeratedAtEQ.
func ModeratedAt(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldModeratedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCreatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldClinicID, vs...))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v int) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v int) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v int) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v int) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldRating, v))
}

// AuthorNameEQ applies the EQ predicate on the "author_name" field.
func AuthorNameEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldAuthorName, v))
}

// AuthorNameNEQ applies the NEQ predicate on the "author_name" field.
func AuthorNameNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldAuthorName, v))
}

// AuthorNameIn applies the In predicate on the "author_name" field.
func AuthorNameIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldAuthorName, vs...))
}

// AuthorNameNotIn applies the NotIn predicate on the "author_name" field.
func AuthorNameNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldAuthorName, vs...))
}

// AuthorNameGT applies the GT predicate on the "author_name" field.
func AuthorNameGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldAuthorName, v))
}

// AuthorNameGTE applies the GTE predicate on the "author_name" field.
func AuthorNameGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldAuthorName, v))
}

// AuthorNameLT applies the LT predicate on the "author_name" field.
func AuthorNameLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldAuthorName, v))
}

// AuthorNameLTE applies the LTE predicate on the "author_name" field.
func AuthorNameLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldAuthorName, v))
}

// AuthorNameContains applies the Contains predicate on the "author_name" field.
func AuthorNameContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldAuthorName, v))
}

// AuthorNameHasPrefix applies the HasPrefix predicate on the "author_name" field.
func AuthorNameHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldAuthorName, v))
}

// AuthorNameHasSuffix applies the HasSuffix predicate on the "author_name" field.
func AuthorNameHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldAuthorName, v))
}

// AuthorNameEqualFold applies the EqualFold predicate on the "author_name" field.
func AuthorNameEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldAuthorName, v))
}

// AuthorNameContainsFold applies the ContainsFold predicate on the "author_name" field.
func AuthorNameContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldAuthorName, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldBody, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldStatus, vs...))
}

// HelpfulCountEQ applies the EQ predicate on the "helpful_count" field.
func HelpfulCountEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldHelpfulCount, v))
}

// HelpfulCountNEQ applies the NEQ predicate on the "helpful_count" field.
func HelpfulCountNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldHelpfulCount, v))
}

// HelpfulCountIn applies the In predicate on the "helpful_count" field.
func HelpfulCountIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldHelpfulCount, vs...))
}

// HelpfulCountNotIn applies the NotIn predicate on the "helpful_count" field.
func HelpfulCountNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldHelpfulCount, vs...))
}

// HelpfulCountGT applies the GT predicate on the "helpful_count" field.
func HelpfulCountGT(v int) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldHelpfulCount, v))
}

// HelpfulCountGTE applies the GTE predicate on the "helpful_count" field.
func HelpfulCountGTE(v int) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldHelpfulCount, v))
}

// HelpfulCountLT applies the LT predicate on the "helpful_count" field.
func HelpfulCountLT(v int) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldHelpfulCount, v))
}

// HelpfulCountLTE applies the LTE predicate on the "helpful_count" field.
func HelpfulCountLTE(v int) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldHelpfulCount, v))
}

// ReportCountEQ applies the EQ predicate on the "report_count" field.
func ReportCountEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldReportCount, v))
}

// ReportCountNEQ applies the NEQ predicate on the "report_count" field.
func ReportCountNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldReportCount, v))
}

// ReportCountIn applies the In predicate on the "report_count" field.
func ReportCountIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldReportCount, vs...))
}

// ReportCountNotIn applies the NotIn predicate on the "report_count" field.
func ReportCountNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldReportCount, vs...))
}

// ReportCountGT applies the GT predicate on the "report_count" field.
func ReportCountGT(v int) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldReportCount, v))
}

// ReportCountGTE applies the GTE predicate on the "report_count" field.
func ReportCountGTE(v int) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldReportCount, v))
}

// ReportCountLT applies the LT predicate on the "report_count" field.
func ReportCountLT(v int) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldReportCount, v))
}

// ReportCountLTE applies the LTE predicate on the "report_count" field.
func ReportCountLTE(v int) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldReportCount, v))
}

// ModeratedAtEQ applies the EQ predicate on the "moderated_at" field.
func ModeratedAtEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldModeratedAt, v))
}

// ModeratedAtNEQ applies the NEQ predicate on the "moderated_at" field.
func ModeratedAtNEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldModeratedAt, v))
}

// ModeratedAtIn applies the In predicate on the "moderated_at" field.
func ModeratedAtIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldModeratedAt, vs...))
}

// ModeratedAtNotIn applies the NotIn predicate on the "moderated_at" field.
func ModeratedAtNotIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldModeratedAt, vs...))
}

// ModeratedAtGT applies the GT predicate on the "moderated_at" field.
func ModeratedAtGT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldModeratedAt, v))
}

// ModeratedAtGTE applies the GTE predicate on the "moderated_at" field.
func ModeratedAtGTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldModeratedAt, v))
}

// ModeratedAtLT applies the LT predicate on the "moderated_at" field.
func ModeratedAtLT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldModeratedAt, v))
}

// ModeratedAtLTE applies the LTE predicate on the "moderated_at" field.
func ModeratedAtLTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldModeratedAt, v))
}

// ModeratedAtIsNil applies the IsNil predicate on the "moderated_at" field.
func ModeratedAtIsNil() predicate.Review {
	return predicate.Review(sql.FieldIsNull(FieldModeratedAt))
}

// ModeratedAtNotNil applies the NotNil predicate on the "moderated_at" field.
func ModeratedAtNotNil() predicate.Review {
	return predicate.Review(sql.FieldNotNull(FieldModeratedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldCreatedAt, v))
}

// HasClinic applies the HasEdge predicate on the "clinic" edge.
func HasClinic() predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClinicTable, ClinicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClinicWith applies the HasEdge predicate on the "clinic" edge with a given conditions (other predicates).
func HasClinicWith(preds ...predicate.Clinic) predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := newClinicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Review) predicate.Review {
	return predicate.Review(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Review) predicate.Review {
	return predicate.Review(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Review) predicate.Review {
	return predicate.Review(sql.NotPredicates(p))
}
