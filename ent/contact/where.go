// Code generated by ent, DO NOT EDIT.

package contact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/menshealthfinder/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldID, id))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldClinicID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldPhone, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCompany, v))
}

// LeadScore applies equality check predicate on the "lead_score" field. It's identical to LeadScoreEQ.
func LeadScore(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLeadScore, v))
}

// TotalInteractions applies equality check predicate on the "total_interactions" field. It's identical to TotalInteractionsEQ.
func TotalInteractions(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldTotalInteractions, v))
}

// EmailOpens applies equality check predicate on the "email_opens" field. It's identical to EmailOpensEQ.
func EmailOpens(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmailOpens, v))
}

// EmailClicks applies equality check predicate on the "email_clicks" field. It's identical to EmailClicksEQ.
func EmailClicks(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmailClicks, v))
}

// WebsiteVisits applies equality check predicate on the "website_visits" field. It's identical to WebsiteVisitsEQ.
func WebsiteVisits(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldWebsiteVisits, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldSource, v))
}

// LastContactedAt applies equality check predicate on the "last_contacted_at" field. It's identical to LastContactedAtEQ.
func LastContactedAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLastContactedAt, v))
}

// StageChangedAt applies equality check predicate on the "stage_changed_at" field. It's identical to StageChangedAtEQ.
func StageChangedAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldStageChangedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDIsNil applies the IsNil predicate on the "clinic_id" field.
func ClinicIDIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldClinicID))
}

// ClinicIDNotNil applies the NotNil predicate on the "clinic_id" field.
func ClinicIDNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldClinicID))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldPhone, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldCompany, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldStage, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldPriority, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldStatus, vs...))
}

// LeadScoreEQ applies the EQ predicate on the "lead_score" field.
func LeadScoreEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLeadScore, v))
}

// LeadScoreNEQ applies the NEQ predicate on the "lead_score" field.
func LeadScoreNEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldLeadScore, v))
}

// LeadScoreIn applies the In predicate on the "lead_score" field.
func LeadScoreIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldLeadScore, vs...))
}

// LeadScoreNotIn applies the NotIn predicate on the "lead_score" field.
func LeadScoreNotIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldLeadScore, vs...))
}

// LeadScoreGT applies the GT predicate on the "lead_score" field.
func LeadScoreGT(v int) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldLeadScore, v))
}

// LeadScoreGTE applies the GTE predicate on the "lead_score" field.
func LeadScoreGTE(v int) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldLeadScore, v))
}

// LeadScoreLT applies the LT predicate on the "lead_score" field.
func LeadScoreLT(v int) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldLeadScore, v))
}

// LeadScoreLTE applies the LTE predicate on the "lead_score" field.
func LeadScoreLTE(v int) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldLeadScore, v))
}

// TotalInteractionsEQ applies the EQ predicate on the "total_interactions" field.
func TotalInteractionsEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldTotalInteractions, v))
}

// TotalInteractionsNEQ applies the NEQ predicate on the "total_interactions" field.
func TotalInteractionsNEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldTotalInteractions, v))
}

// TotalInteractionsIn applies the In predicate on the "total_interactions" field.
func TotalInteractionsIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldTotalInteractions, vs...))
}

// TotalInteractionsNotIn applies the NotIn predicate on the "total_interactions" field.
func TotalInteractionsNotIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldTotalInteractions, vs...))
}

// TotalInteractionsGT applies the GT predicate on the "total_interactions" field.
func TotalInteractionsGT(v int) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldTotalInteractions, v))
}

// TotalInteractionsGTE applies the GTE predicate on the "total_interactions" field.
func TotalInteractionsGTE(v int) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldTotalInteractions, v))
}

// TotalInteractionsLT applies the LT predicate on the "total_interactions" field.
func TotalInteractionsLT(v int) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldTotalInteractions, v))
}

// TotalInteractionsLTE applies the LTE predicate on the "total_interactions" field.
func TotalInteractionsLTE(v int) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldTotalInteractions, v))
}

// EmailOpensEQ applies the EQ predicate on the "email_opens" field.
func EmailOpensEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmailOpens, v))
}

// EmailOpensNEQ applies the NEQ predicate on the "email_opens" field.
func EmailOpensNEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEmailOpens, v))
}

// EmailOpensIn applies the In predicate on the "email_opens" field.
func EmailOpensIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEmailOpens, vs...))
}

// EmailOpensNotIn applies the NotIn predicate on the "email_opens" field.
func EmailOpensNotIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEmailOpens, vs...))
}

// EmailOpensGT applies the GT predicate on the "email_opens" field.
func EmailOpensGT(v int) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEmailOpens, v))
}

// EmailOpensGTE applies the GTE predicate on the "email_opens" field.
func EmailOpensGTE(v int) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEmailOpens, v))
}

// EmailOpensLT applies the LT predicate on the "email_opens" field.
func EmailOpensLT(v int) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEmailOpens, v))
}

// EmailOpensLTE applies the LTE predicate on the "email_opens" field.
func EmailOpensLTE(v int) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEmailOpens, v))
}

// EmailClicksEQ applies the EQ predicate on the "email_clicks" field.
func EmailClicksEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmailClicks, v))
}

// EmailClicksNEQ applies the NEQ predicate on the "email_clicks" field.
func EmailClicksNEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEmailClicks, v))
}

// EmailClicksIn applies the In predicate on the "email_clicks" field.
func EmailClicksIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEmailClicks, vs...))
}

// EmailClicksNotIn applies the NotIn predicate on the "email_clicks" field.
func EmailClicksNotIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEmailClicks, vs...))
}

// EmailClicksGT applies the GT predicate on the "email_clicks" field.
func EmailClicksGT(v int) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEmailClicks, v))
}

// EmailClicksGTE applies the GTE predicate on the "email_clicks" field.
func EmailClicksGTE(v int) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEmailClicks, v))
}

// EmailClicksLT applies the LT predicate on the "email_clicks" field.
func EmailClicksLT(v int) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEmailClicks, v))
}

// EmailClicksLTE applies the LTE predicate on the "email_clicks" field.
func EmailClicksLTE(v int) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEmailClicks, v))
}

// WebsiteVisitsEQ applies the EQ predicate on the "website_visits" field.
func WebsiteVisitsEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldWebsiteVisits, v))
}

// WebsiteVisitsNEQ applies the NEQ predicate on the "website_visits" field.
func WebsiteVisitsNEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldWebsiteVisits, v))
}

// WebsiteVisitsIn applies the In predicate on the "website_visits" field.
func WebsiteVisitsIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldWebsiteVisits, vs...))
}

// WebsiteVisitsNotIn applies the NotIn predicate on the "website_visits" field.
func WebsiteVisitsNotIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldWebsiteVisits, vs...))
}

// WebsiteVisitsGT applies the GT predicate on the "website_visits" field.
func WebsiteVisitsGT(v int) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldWebsiteVisits, v))
}

// WebsiteVisitsGTE applies the GTE predicate on the "website_visits" field.
func WebsiteVisitsGTE(v int) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldWebsiteVisits, v))
}

// WebsiteVisitsLT applies the LT predicate on the "website_visits" field.
func WebsiteVisitsLT(v int) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldWebsiteVisits, v))
}

// WebsiteVisitsLTE applies the LTE predicate on the "website_visits" field.
func WebsiteVisitsLTE(v int) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldWebsiteVisits, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldSource, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldTags))
}

// LastContactedAtEQ applies the EQ predicate on the "last_contacted_at" field.
func LastContactedAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLastContactedAt, v))
}

// LastContactedAtNEQ applies the NEQ predicate on the "last_contacted_at" field.
func LastContactedAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldLastContactedAt, v))
}

// LastContactedAtIn applies the In predicate on the "last_contacted_at" field.
func LastContactedAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldLastContactedAt, vs...))
}

// LastContactedAtNotIn applies the NotIn predicate on the "last_contacted_at" field.
func LastContactedAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldLastContactedAt, vs...))
}

// LastContactedAtGT applies the GT predicate on the "last_contacted_at" field.
func LastContactedAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldLastContactedAt, v))
}

// LastContactedAtGTE applies the GTE predicate on the "last_contacted_at" field.
func LastContactedAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldLastContactedAt, v))
}

// LastContactedAtLT applies the LT predicate on the "last_contacted_at" field.
func LastContactedAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldLastContactedAt, v))
}

// LastContactedAtLTE applies the LTE predicate on the "last_contacted_at" field.
func LastContactedAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldLastContactedAt, v))
}

// LastContactedAtIsNil applies the IsNil predicate on the "last_contacted_at" field.
func LastContactedAtIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldLastContactedAt))
}

// LastContactedAtNotNil applies the NotNil predicate on the "last_contacted_at" field.
func LastContactedAtNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldLastContactedAt))
}

// StageChangedAtEQ applies the EQ predicate on the "stage_changed_at" field.
func StageChangedAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldStageChangedAt, v))
}

// StageChangedAtNEQ applies the NEQ predicate on the "stage_changed_at" field.
func StageChangedAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldStageChangedAt, v))
}

// StageChangedAtIn applies the In predicate on the "stage_changed_at" field.
func StageChangedAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldStageChangedAt, vs...))
}

// StageChangedAtNotIn applies the NotIn predicate on the "stage_changed_at" field.
func StageChangedAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldStageChangedAt, vs...))
}

// StageChangedAtGT applies the GT predicate on the "stage_changed_at" field.
func StageChangedAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldStageChangedAt, v))
}

// StageChangedAtGTE applies the GTE predicate on the "stage_changed_at" field.
func StageChangedAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldStageChangedAt, v))
}

// StageChangedAtLT applies the LT predicate on the "stage_changed_at" field.
func StageChangedAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldStageChangedAt, v))
}

// StageChangedAtLTE applies the LTE predicate on the "stage_changed_at" field.
func StageChangedAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldStageChangedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasClinic applies the HasEdge predicate on the "clinic" edge.
func HasClinic() predicate.Contact {
	return predicate.Contact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClinicTable, ClinicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClinicWith applies the HasEdge predicate on the "clinic" edge with a given conditions (other predicates).
func HasClinicWith(preds ...predicate.Clinic) predicate.Contact {
	return predicate.Contact(func(s *sql.Selector) {
		step := newClinicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasActivities applies the HasEdge predicate on the "activities" edge.
func HasActivities() predicate.Contact {
	return predicate.Contact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActivitiesTable, ActivitiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActivitiesWith applies the HasEdge predicate on the "activities" edge with a given conditions (other predicates).
func HasActivitiesWith(preds ...predicate.Activity) predicate.Contact {
	return predicate.Contact(func(s *sql.Selector) {
		step := newActivitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Contact {
	return predicate.Contact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.FollowUpTask) predicate.Contact {
	return predicate.Contact(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.NotPredicates(p))
}
