package models

// CreateContactRequest represents a CRM contact creation request
type CreateContactRequest struct {
	ClinicID *int     `json:"clinic_id,omitempty"`
	Name     string   `json:"name" validate:"required,min=2"`
	Email    string   `json:"email" validate:"required,email"`
	Phone    string   `json:"phone"`
	Company  string   `json:"company"`
	Source   string   `json:"source"`
	Priority string   `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Tags     []string `json:"tags"`
}

// UpdateContactRequest represents a CRM contact update request
type UpdateContactRequest struct {
	Name     *string   `json:"name,omitempty" validate:"omitempty,min=2"`
	Email    *string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string   `json:"phone,omitempty"`
	Company  *string   `json:"company,omitempty"`
	Priority *string   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Tags     *[]string `json:"tags,omitempty"`
}

// ChangeStageRequest advances a contact through the pipeline. Moving
// backwards requires the explicit override flag.
type ChangeStageRequest struct {
	Stage    string `json:"stage" validate:"required,oneof=new contacted qualified proposal negotiation closed_won closed_lost nurturing"`
	Override bool   `json:"override"`
}

// LogActivityRequest appends an activity to a contact's timeline
type LogActivityRequest struct {
	Type        string `json:"type" validate:"required,oneof=email call meeting note"`
	Subject     string `json:"subject" validate:"required,min=2"`
	Description string `json:"description"`
}

// ContactResponse represents a contact in API responses
type ContactResponse struct {
	ID                int      `json:"id"`
	ClinicID          *int     `json:"clinic_id,omitempty"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone,omitempty"`
	Company           string   `json:"company,omitempty"`
	Stage             string   `json:"stage"`
	Priority          string   `json:"priority"`
	Status            string   `json:"status"`
	LeadScore         int      `json:"lead_score"`
	TotalInteractions int      `json:"total_interactions"`
	EmailOpens        int      `json:"email_opens"`
	EmailClicks       int      `json:"email_clicks"`
	WebsiteVisits     int      `json:"website_visits"`
	Source            string   `json:"source,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	LastContactedAt   string   `json:"last_contacted_at,omitempty"`
	CreatedAt         string   `json:"created_at"`
}

// ContactListResponse represents a paginated contact list
type ContactListResponse struct {
	Data       []ContactResponse `json:"data"`
	Pagination PaginationInfo    `json:"pagination"`
}

// TaskResponse represents a follow-up task in API responses
type TaskResponse struct {
	ID        int    `json:"id"`
	ContactID int    `json:"contact_id"`
	RuleName  string `json:"rule_name"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Template  string `json:"template,omitempty"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	DueAt     string `json:"due_at"`
	CreatedAt string `json:"created_at"`
}
