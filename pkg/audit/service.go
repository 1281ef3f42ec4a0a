// Package audit records operator-facing actions into the audit_logs table.
package audit

import (
	"context"
	"strconv"
	"time"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/auditlog"
)

// Well-known audit actions. Action is a free-form string in the schema so
// new events don't require a migration; these constants keep call sites
// consistent.
const (
	ActionUserLogin          = "user.login"
	ActionUserLogout         = "user.logout"
	ActionClinicCreate       = "clinic.create"
	ActionClinicUpdate       = "clinic.update"
	ActionClinicStatusChange = "clinic.status_change"
	ActionClinicTierChange   = "clinic.tier_change"
	ActionClinicMerge        = "clinic.merge"
	ActionReviewModerate     = "review.moderate"
	ActionImportRun          = "import.run"
	ActionFollowUpAuditRun   = "followup.audit_run"
	ActionContentRegenerate  = "content.regenerate"
	ActionRescrapeTrigger    = "clinic.rescrape"
)

// Service handles audit logging
type Service struct {
	db *ent.Client
}

// NewService creates a new audit service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// LogEntry represents an audit log entry
type LogEntry struct {
	UserID       *int
	Action       string
	ResourceType *string
	ResourceID   *string
	IPAddress    *string
	UserAgent    *string
	Metadata     map[string]interface{}
	Severity     auditlog.Severity
	Description  *string
}

// Log creates a new audit log entry
func (s *Service) Log(ctx context.Context, entry LogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	create := s.db.AuditLog.Create().
		SetAction(entry.Action).
		SetSeverity(entry.Severity)

	if entry.UserID != nil {
		create = create.SetUserID(*entry.UserID)
	}
	if entry.ResourceType != nil {
		create = create.SetResourceType(*entry.ResourceType)
	}
	if entry.ResourceID != nil {
		create = create.SetResourceID(*entry.ResourceID)
	}
	if entry.IPAddress != nil {
		create = create.SetIPAddress(*entry.IPAddress)
	}
	if entry.UserAgent != nil {
		create = create.SetUserAgent(*entry.UserAgent)
	}
	if entry.Description != nil {
		create = create.SetDescription(*entry.Description)
	}
	if entry.Metadata != nil {
		create = create.SetMetadata(entry.Metadata)
	}

	_, err := create.Save(ctx)
	return err
}

// LogUserLogin logs an operator login event
func (s *Service) LogUserLogin(ctx context.Context, userID int, ipAddress, userAgent string) error {
	desc := "User logged in successfully"
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      ActionUserLogin,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogUserLogout logs an operator logout event
func (s *Service) LogUserLogout(ctx context.Context, userID int, ipAddress, userAgent string) error {
	desc := "User logged out"
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      ActionUserLogout,
		IPAddress:   &ipAddress,
		UserAgent:   &userAgent,
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogClinicStatusChange logs a clinic listing status transition
func (s *Service) LogClinicStatusChange(ctx context.Context, userID *int, clinicID int, from, to, reason string) error {
	desc := "Clinic status changed"
	resourceType := "clinic"
	resourceID := strconv.Itoa(clinicID)
	severity := auditlog.SeverityInfo
	if to == "flagged" {
		severity = auditlog.SeverityWarning
	}
	return s.Log(ctx, LogEntry{
		UserID:       userID,
		Action:       ActionClinicStatusChange,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		Metadata: map[string]interface{}{
			"from":   from,
			"to":     to,
			"reason": reason,
		},
		Severity:    severity,
		Description: &desc,
	})
}

// LogClinicTierChange logs a clinic tier upgrade or downgrade
func (s *Service) LogClinicTierChange(ctx context.Context, userID *int, clinicID int, from, to string) error {
	desc := "Clinic tier changed"
	resourceType := "clinic"
	resourceID := strconv.Itoa(clinicID)
	return s.Log(ctx, LogEntry{
		UserID:       userID,
		Action:       ActionClinicTierChange,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		Metadata: map[string]interface{}{
			"from": from,
			"to":   to,
		},
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// LogClinicMerge logs a duplicate-clinic merge
func (s *Service) LogClinicMerge(ctx context.Context, userID *int, primaryID, duplicateID int) error {
	desc := "Duplicate clinic merged"
	resourceType := "clinic"
	resourceID := strconv.Itoa(primaryID)
	return s.Log(ctx, LogEntry{
		UserID:       userID,
		Action:       ActionClinicMerge,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		Metadata: map[string]interface{}{
			"primary_id":   primaryID,
			"duplicate_id": duplicateID,
		},
		Severity:    auditlog.SeverityWarning,
		Description: &desc,
	})
}

// LogReviewModeration logs a review publish/reject decision
func (s *Service) LogReviewModeration(ctx context.Context, userID *int, reviewID int, decision string) error {
	desc := "Review moderated"
	resourceType := "review"
	resourceID := strconv.Itoa(reviewID)
	return s.Log(ctx, LogEntry{
		UserID:       userID,
		Action:       ActionReviewModerate,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
		Metadata: map[string]interface{}{
			"decision": decision,
		},
		Severity:    auditlog.SeverityInfo,
		Description: &desc,
	})
}

// GetRecentLogs retrieves recent audit logs (for admin)
func (s *Service) GetRecentLogs(ctx context.Context, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.AuditLog.Query().
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// GetCriticalLogs retrieves warning and critical severity logs
func (s *Service) GetCriticalLogs(ctx context.Context, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.db.AuditLog.Query().
		Where(auditlog.SeverityIn(auditlog.SeverityWarning, auditlog.SeverityCritical)).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
