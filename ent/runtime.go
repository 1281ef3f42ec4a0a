// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/menshealthfinder/api/ent/activity"
	"github.com/menshealthfinder/api/ent/auditlog"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/followuptask"
	"github.com/menshealthfinder/api/ent/leadsession"
	"github.com/menshealthfinder/api/ent/review"
	"github.com/menshealthfinder/api/ent/schema"
	"github.com/menshealthfinder/api/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescContactID is the schema descriptor for contact_id field.
	activityDescContactID := activityFields[0].Descriptor()
	// activity.ContactIDValidator is a validator for the "contact_id" field. It is called by the builders before save.
	activity.ContactIDValidator = activityDescContactID.Validators[0].(func(int) error)
	// activityDescSubject is the schema descriptor for subject field.
	activityDescSubject := activityFields[2].Descriptor()
	// activity.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	activity.SubjectValidator = func() func(string) error {
		validators := activityDescSubject.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(subject string) error {
			for _, fn := range fns {
				if err := fn(subject); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// activityDescCreatedAt is the schema descriptor for created_at field.
	activityDescCreatedAt := activityFields[5].Descriptor()
	// activity.DefaultCreatedAt holds the default value on creation for the created_at field.
	activity.DefaultCreatedAt = activityDescCreatedAt.Default.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[9].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	clinicFields := schema.Clinic{}.Fields()
	_ = clinicFields
	// clinicDescName is the schema descriptor for name field.
	clinicDescName := clinicFields[0].Descriptor()
	// clinic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	clinic.NameValidator = clinicDescName.Validators[0].(func(string) error)
	// clinicDescSlug is the schema descriptor for slug field.
	clinicDescSlug := clinicFields[1].Descriptor()
	// clinic.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	clinic.SlugValidator = clinicDescSlug.Validators[0].(func(string) error)
	// clinicDescCity is the schema descriptor for city field.
	clinicDescCity := clinicFields[2].Descriptor()
	// clinic.CityValidator is a validator for the "city" field. It is called by the builders before save.
	clinic.CityValidator = clinicDescCity.Validators[0].(func(string) error)
	// clinicDescState is the schema descriptor for state field.
	clinicDescState := clinicFields[3].Descriptor()
	// clinic.StateValidator is a validator for the "state" field. It is called by the builders before save.
	clinic.StateValidator = func() func(string) error {
		validators := clinicDescState.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(state string) error {
			for _, fn := range fns {
				if err := fn(state); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescVerified is the schema descriptor for verified field.
	clinicDescVerified := clinicFields[17].Descriptor()
	// clinic.DefaultVerified holds the default value on creation for the verified field.
	clinic.DefaultVerified = clinicDescVerified.Default.(bool)
	// clinicDescIndexed is the schema descriptor for indexed field.
	clinicDescIndexed := clinicFields[18].Descriptor()
	// clinic.DefaultIndexed holds the default value on creation for the indexed field.
	clinic.DefaultIndexed = clinicDescIndexed.Default.(bool)
	// clinicDescRatingAvg is the schema descriptor for rating_avg field.
	clinicDescRatingAvg := clinicFields[19].Descriptor()
	// clinic.DefaultRatingAvg holds the default value on creation for the rating_avg field.
	clinic.DefaultRatingAvg = clinicDescRatingAvg.Default.(float64)
	// clinicDescReviewCount is the schema descriptor for review_count field.
	clinicDescReviewCount := clinicFields[20].Descriptor()
	// clinic.DefaultReviewCount holds the default value on creation for the review_count field.
	clinic.DefaultReviewCount = clinicDescReviewCount.Default.(int)
	// clinic.ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	clinic.ReviewCountValidator = clinicDescReviewCount.Validators[0].(func(int) error)
	// clinicDescClicks30d is the schema descriptor for clicks_30d field.
	clinicDescClicks30d := clinicFields[21].Descriptor()
	// clinic.DefaultClicks30d holds the default value on creation for the clicks_30d field.
	clinic.DefaultClicks30d = clinicDescClicks30d.Default.(int)
	// clinic.Clicks30dValidator is a validator for the "clicks_30d" field. It is called by the builders before save.
	clinic.Clicks30dValidator = clinicDescClicks30d.Validators[0].(func(int) error)
	// clinicDescCalls30d is the schema descriptor for calls_30d field.
	clinicDescCalls30d := clinicFields[22].Descriptor()
	// clinic.DefaultCalls30d holds the default value on creation for the calls_30d field.
	clinic.DefaultCalls30d = clinicDescCalls30d.Default.(int)
	// clinic.Calls30dValidator is a validator for the "calls_30d" field. It is called by the builders before save.
	clinic.Calls30dValidator = clinicDescCalls30d.Validators[0].(func(int) error)
	// clinicDescEngagementScore is the schema descriptor for engagement_score field.
	clinicDescEngagementScore := clinicFields[23].Descriptor()
	// clinic.DefaultEngagementScore holds the default value on creation for the engagement_score field.
	clinic.DefaultEngagementScore = clinicDescEngagementScore.Default.(int)
	// clinic.EngagementScoreValidator is a validator for the "engagement_score" field. It is called by the builders before save.
	clinic.EngagementScoreValidator = func() func(int) error {
		validators := clinicDescEngagementScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(engagement_score int) error {
			for _, fn := range fns {
				if err := fn(engagement_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescCreatedAt is the schema descriptor for created_at field.
	clinicDescCreatedAt := clinicFields[26].Descriptor()
	// clinic.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinic.DefaultCreatedAt = clinicDescCreatedAt.Default.(func() time.Time)
	// clinicDescUpdatedAt is the schema descriptor for updated_at field.
	clinicDescUpdatedAt := clinicFields[27].Descriptor()
	// clinic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinic.DefaultUpdatedAt = clinicDescUpdatedAt.Default.(func() time.Time)
	// clinic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinic.UpdateDefaultUpdatedAt = clinicDescUpdatedAt.UpdateDefault.(func() time.Time)
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescName is the schema descriptor for name field.
	contactDescName := contactFields[1].Descriptor()
	// contact.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contact.NameValidator = contactDescName.Validators[0].(func(string) error)
	// contactDescLeadScore is the schema descriptor for lead_score field.
	contactDescLeadScore := contactFields[8].Descriptor()
	// contact.DefaultLeadScore holds the default value on creation for the lead_score field.
	contact.DefaultLeadScore = contactDescLeadScore.Default.(int)
	// contact.LeadScoreValidator is a validator for the "lead_score" field. It is called by the builders before save.
	contact.LeadScoreValidator = func() func(int) error {
		validators := contactDescLeadScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(lead_score int) error {
			for _, fn := range fns {
				if err := fn(lead_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactDescTotalInteractions is the schema descriptor for total_interactions field.
	contactDescTotalInteractions := contactFields[9].Descriptor()
	// contact.DefaultTotalInteractions holds the default value on creation for the total_interactions field.
	contact.DefaultTotalInteractions = contactDescTotalInteractions.Default.(int)
	// contact.TotalInteractionsValidator is a validator for the "total_interactions" field. It is called by the builders before save.
	contact.TotalInteractionsValidator = contactDescTotalInteractions.Validators[0].(func(int) error)
	// contactDescEmailOpens is the schema descriptor for email_opens field.
	contactDescEmailOpens := contactFields[10].Descriptor()
	// contact.DefaultEmailOpens holds the default value on creation for the email_opens field.
	contact.DefaultEmailOpens = contactDescEmailOpens.Default.(int)
	// contact.EmailOpensValidator is a validator for the "email_opens" field. It is called by the builders before save.
	contact.EmailOpensValidator = contactDescEmailOpens.Validators[0].(func(int) error)
	// contactDescEmailClicks is the schema descriptor for email_clicks field.
	contactDescEmailClicks := contactFields[11].Descriptor()
	// contact.DefaultEmailClicks holds the default value on creation for the email_clicks field.
	contact.DefaultEmailClicks = contactDescEmailClicks.Default.(int)
	// contact.EmailClicksValidator is a validator for the "email_clicks" field. It is called by the builders before save.
	contact.EmailClicksValidator = contactDescEmailClicks.Validators[0].(func(int) error)
	// contactDescWebsiteVisits is the schema descriptor for website_visits field.
	contactDescWebsiteVisits := contactFields[12].Descriptor()
	// contact.DefaultWebsiteVisits holds the default value on creation for the website_visits field.
	contact.DefaultWebsiteVisits = contactDescWebsiteVisits.Default.(int)
	// contact.WebsiteVisitsValidator is a validator for the "website_visits" field. It is called by the builders before save.
	contact.WebsiteVisitsValidator = contactDescWebsiteVisits.Validators[0].(func(int) error)
	// contactDescStageChangedAt is the schema descriptor for stage_changed_at field.
	contactDescStageChangedAt := contactFields[16].Descriptor()
	// contact.DefaultStageChangedAt holds the default value on creation for the stage_changed_at field.
	contact.DefaultStageChangedAt = contactDescStageChangedAt.Default.(func() time.Time)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[17].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactFields[18].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	followuptaskFields := schema.FollowUpTask{}.Fields()
	_ = followuptaskFields
	// followuptaskDescContactID is the schema descriptor for contact_id field.
	followuptaskDescContactID := followuptaskFields[0].Descriptor()
	// followuptask.ContactIDValidator is a validator for the "contact_id" field. It is called by the builders before save.
	followuptask.ContactIDValidator = followuptaskDescContactID.Validators[0].(func(int) error)
	// followuptaskDescRuleName is the schema descriptor for rule_name field.
	followuptaskDescRuleName := followuptaskFields[1].Descriptor()
	// followuptask.RuleNameValidator is a validator for the "rule_name" field. It is called by the builders before save.
	followuptask.RuleNameValidator = followuptaskDescRuleName.Validators[0].(func(string) error)
	// followuptaskDescTitle is the schema descriptor for title field.
	followuptaskDescTitle := followuptaskFields[3].Descriptor()
	// followuptask.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	followuptask.TitleValidator = func() func(string) error {
		validators := followuptaskDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// followuptaskDescCreatedAt is the schema descriptor for created_at field.
	followuptaskDescCreatedAt := followuptaskFields[10].Descriptor()
	// followuptask.DefaultCreatedAt holds the default value on creation for the created_at field.
	followuptask.DefaultCreatedAt = followuptaskDescCreatedAt.Default.(func() time.Time)
	leadsessionFields := schema.LeadSession{}.Fields()
	_ = leadsessionFields
	// leadsessionDescSessionID is the schema descriptor for session_id field.
	leadsessionDescSessionID := leadsessionFields[0].Descriptor()
	// leadsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	leadsession.SessionIDValidator = leadsessionDescSessionID.Validators[0].(func(string) error)
	// leadsessionDescSource is the schema descriptor for source field.
	leadsessionDescSource := leadsessionFields[3].Descriptor()
	// leadsession.DefaultSource holds the default value on creation for the source field.
	leadsession.DefaultSource = leadsessionDescSource.Default.(string)
	// leadsessionDescDwellSeconds is the schema descriptor for dwell_seconds field.
	leadsessionDescDwellSeconds := leadsessionFields[6].Descriptor()
	// leadsession.DefaultDwellSeconds holds the default value on creation for the dwell_seconds field.
	leadsession.DefaultDwellSeconds = leadsessionDescDwellSeconds.Default.(int)
	// leadsession.DwellSecondsValidator is a validator for the "dwell_seconds" field. It is called by the builders before save.
	leadsession.DwellSecondsValidator = leadsessionDescDwellSeconds.Validators[0].(func(int) error)
	// leadsessionDescConverted is the schema descriptor for converted field.
	leadsessionDescConverted := leadsessionFields[7].Descriptor()
	// leadsession.DefaultConverted holds the default value on creation for the converted field.
	leadsession.DefaultConverted = leadsessionDescConverted.Default.(bool)
	// leadsessionDescStartedAt is the schema descriptor for started_at field.
	leadsessionDescStartedAt := leadsessionFields[8].Descriptor()
	// leadsession.DefaultStartedAt holds the default value on creation for the started_at field.
	leadsession.DefaultStartedAt = leadsessionDescStartedAt.Default.(func() time.Time)
	// leadsessionDescLastActiveAt is the schema descriptor for last_active_at field.
	leadsessionDescLastActiveAt := leadsessionFields[9].Descriptor()
	// leadsession.DefaultLastActiveAt holds the default value on creation for the last_active_at field.
	leadsession.DefaultLastActiveAt = leadsessionDescLastActiveAt.Default.(func() time.Time)
	reviewFields := schema.Review{}.Fields()
	_ = reviewFields
	// reviewDescClinicID is the schema descriptor for clinic_id field.
	reviewDescClinicID := reviewFields[0].Descriptor()
	// review.ClinicIDValidator is a validator for the "clinic_id" field. It is called by the builders before save.
	review.ClinicIDValidator = reviewDescClinicID.Validators[0].(func(int) error)
	// reviewDescRating is the schema descriptor for rating field.
	reviewDescRating := reviewFields[1].Descriptor()
	// review.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	review.RatingValidator = func() func(int) error {
		validators := reviewDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reviewDescAuthorName is the schema descriptor for author_name field.
	reviewDescAuthorName := reviewFields[2].Descriptor()
	// review.AuthorNameValidator is a validator for the "author_name" field. It is called by the builders before save.
	review.AuthorNameValidator = func() func(string) error {
		validators := reviewDescAuthorName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(author_name string) error {
			for _, fn := range fns {
				if err := fn(author_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reviewDescBody is the schema descriptor for body field.
	reviewDescBody := reviewFields[3].Descriptor()
	// review.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	review.BodyValidator = func() func(string) error {
		validators := reviewDescBody.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(body string) error {
			for _, fn := range fns {
				if err := fn(body); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reviewDescHelpfulCount is the schema descriptor for helpful_count field.
	reviewDescHelpfulCount := reviewFields[5].Descriptor()
	// review.DefaultHelpfulCount holds the default value on creation for the helpful_count field.
	review.DefaultHelpfulCount = reviewDescHelpfulCount.Default.(int)
	// review.HelpfulCountValidator is a validator for the "helpful_count" field. It is called by the builders before save.
	review.HelpfulCountValidator = reviewDescHelpfulCount.Validators[0].(func(int) error)
	// reviewDescReportCount is the schema descriptor for report_count field.
	reviewDescReportCount := reviewFields[6].Descriptor()
	// review.DefaultReportCount holds the default value on creation for the report_count field.
	review.DefaultReportCount = reviewDescReportCount.Default.(int)
	// review.ReportCountValidator is a validator for the "report_count" field. It is called by the builders before save.
	review.ReportCountValidator = reviewDescReportCount.Validators[0].(func(int) error)
	// reviewDescCreatedAt is the schema descriptor for created_at field.
	reviewDescCreatedAt := reviewFields[8].Descriptor()
	// review.DefaultCreatedAt holds the default value on creation for the created_at field.
	review.DefaultCreatedAt = reviewDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
