// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"email", "call", "meeting", "note"}},
		{Name: "subject", Type: field.TypeString, Size: 500},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "author_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "contact_id", Type: field.TypeInt},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activities_contacts_activities",
				Columns:    []*schema.Column{ActivitiesColumns[6]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activity_contact_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[6], ActivitiesColumns[5]},
			},
			{
				Name:    "activity_type",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[1]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "error", "critical"}, Default: "info"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[10]},
			},
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[10]},
			},
		},
	}
	// ClinicsColumns holds the columns for the "clinics" table.
	ClinicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "city", Type: field.TypeString},
		{Name: "state", Type: field.TypeString, Size: 2},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "postal_code", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "place_id", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "services", Type: field.TypeJSON, Nullable: true},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"free", "standard", "advanced"}, Default: "free"},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "flagged"}, Default: "active"},
		{Name: "verified", Type: field.TypeBool, Default: false},
		{Name: "indexed", Type: field.TypeBool, Default: false},
		{Name: "rating_avg", Type: field.TypeFloat64, Default: 0},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "clicks_30d", Type: field.TypeInt, Default: 0},
		{Name: "calls_30d", Type: field.TypeInt, Default: 0},
		{Name: "engagement_score", Type: field.TypeInt, Default: 0},
		{Name: "engagement_status", Type: field.TypeEnum, Enums: []string{"engaged", "low", "none"}, Default: "none"},
		{Name: "engagement_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ClinicsTable holds the schema information for the "clinics" table.
	ClinicsTable = &schema.Table{
		Name:       "clinics",
		Columns:    ClinicsColumns,
		PrimaryKey: []*schema.Column{ClinicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clinic_state_city",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[4], ClinicsColumns[3]},
			},
			{
				Name:    "clinic_tier",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[15]},
			},
			{
				Name:    "clinic_status",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[17]},
			},
			{
				Name:    "clinic_engagement_status",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[25]},
			},
			{
				Name:    "clinic_latitude_longitude",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[10], ClinicsColumns[11]},
			},
			{
				Name:    "clinic_place_id",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[12]},
			},
			{
				Name:    "clinic_created_at",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[27]},
			},
		},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"new", "contacted", "qualified", "proposal", "negotiation", "closed_won", "closed_lost", "nurturing"}, Default: "new"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "urgent"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "archived"}, Default: "active"},
		{Name: "lead_score", Type: field.TypeInt, Default: 0},
		{Name: "total_interactions", Type: field.TypeInt, Default: 0},
		{Name: "email_opens", Type: field.TypeInt, Default: 0},
		{Name: "email_clicks", Type: field.TypeInt, Default: 0},
		{Name: "website_visits", Type: field.TypeInt, Default: 0},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "last_contacted_at", Type: field.TypeTime, Nullable: true},
		{Name: "stage_changed_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeInt, Nullable: true},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contacts_clinics_contacts",
				Columns:    []*schema.Column{ContactsColumns[19]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contact_clinic_id_stage",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[19], ContactsColumns[5]},
			},
			{
				Name:    "contact_stage",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[5]},
			},
			{
				Name:    "contact_status",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[7]},
			},
			{
				Name:    "contact_email",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[2]},
			},
			{
				Name:    "contact_last_contacted_at",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[15]},
			},
			{
				Name:    "contact_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[17]},
			},
		},
	}
	// FollowUpTasksColumns holds the columns for the "follow_up_tasks" table.
	FollowUpTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "rule_name", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"email", "call", "meeting"}},
		{Name: "title", Type: field.TypeString, Size: 500},
		{Name: "template", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "urgent"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "cancelled"}, Default: "pending"},
		{Name: "due_at", Type: field.TypeTime},
		{Name: "assigned_to", Type: field.TypeInt, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "contact_id", Type: field.TypeInt},
	}
	// FollowUpTasksTable holds the schema information for the "follow_up_tasks" table.
	FollowUpTasksTable = &schema.Table{
		Name:       "follow_up_tasks",
		Columns:    FollowUpTasksColumns,
		PrimaryKey: []*schema.Column{FollowUpTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "follow_up_tasks_contacts_tasks",
				Columns:    []*schema.Column{FollowUpTasksColumns[11]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "followuptask_contact_id_rule_name_created_at",
				Unique:  false,
				Columns: []*schema.Column{FollowUpTasksColumns[11], FollowUpTasksColumns[1], FollowUpTasksColumns[10]},
			},
			{
				Name:    "followuptask_status_due_at",
				Unique:  false,
				Columns: []*schema.Column{FollowUpTasksColumns[6], FollowUpTasksColumns[7]},
			},
			{
				Name:    "followuptask_assigned_to",
				Unique:  false,
				Columns: []*schema.Column{FollowUpTasksColumns[8]},
			},
		},
	}
	// LeadSessionsColumns holds the columns for the "lead_sessions" table.
	LeadSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "actions", Type: field.TypeJSON, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "unknown"},
		{Name: "device", Type: field.TypeString, Nullable: true},
		{Name: "browser", Type: field.TypeString, Nullable: true},
		{Name: "dwell_seconds", Type: field.TypeInt, Default: 0},
		{Name: "converted", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "last_active_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeInt, Nullable: true},
	}
	// LeadSessionsTable holds the schema information for the "lead_sessions" table.
	LeadSessionsTable = &schema.Table{
		Name:       "lead_sessions",
		Columns:    LeadSessionsColumns,
		PrimaryKey: []*schema.Column{LeadSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lead_sessions_clinics_sessions",
				Columns:    []*schema.Column{LeadSessionsColumns[10]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "leadsession_clinic_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{LeadSessionsColumns[10], LeadSessionsColumns[8]},
			},
			{
				Name:    "leadsession_source",
				Unique:  false,
				Columns: []*schema.Column{LeadSessionsColumns[3]},
			},
			{
				Name:    "leadsession_last_active_at",
				Unique:  false,
				Columns: []*schema.Column{LeadSessionsColumns[9]},
			},
		},
	}
	// ReviewsColumns holds the columns for the "reviews" table.
	ReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "rating", Type: field.TypeInt},
		{Name: "author_name", Type: field.TypeString, Size: 100},
		{Name: "body", Type: field.TypeString, Size: 5000},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "published", "rejected"}, Default: "pending"},
		{Name: "helpful_count", Type: field.TypeInt, Default: 0},
		{Name: "report_count", Type: field.TypeInt, Default: 0},
		{Name: "moderated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeInt},
	}
	// ReviewsTable holds the schema information for the "reviews" table.
	ReviewsTable = &schema.Table{
		Name:       "reviews",
		Columns:    ReviewsColumns,
		PrimaryKey: []*schema.Column{ReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reviews_clinics_reviews",
				Columns:    []*schema.Column{ReviewsColumns[9]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "review_clinic_id_status",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[9], ReviewsColumns[4]},
			},
			{
				Name:    "review_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewsColumns[4], ReviewsColumns[8]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"operator", "admin"}, Default: "operator"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivitiesTable,
		AuditLogsTable,
		ClinicsTable,
		ContactsTable,
		FollowUpTasksTable,
		LeadSessionsTable,
		ReviewsTable,
		UsersTable,
	}
)

func init() {
	ActivitiesTable.ForeignKeys[0].RefTable = ContactsTable
	ContactsTable.ForeignKeys[0].RefTable = ClinicsTable
	FollowUpTasksTable.ForeignKeys[0].RefTable = ContactsTable
	LeadSessionsTable.ForeignKeys[0].RefTable = ClinicsTable
	ReviewsTable.ForeignKeys[0].RefTable = ClinicsTable
}
