package models

// SubmitReviewRequest represents a public review submission
type SubmitReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	AuthorName string `json:"author_name" validate:"required,min=2,max=80"`
	Body       string `json:"body" validate:"required,min=10,max=4000"`
}

// ModerateReviewRequest publishes or rejects a pending review
type ModerateReviewRequest struct {
	Decision string `json:"decision" validate:"required,oneof=published rejected"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID           int    `json:"id"`
	ClinicID     int    `json:"clinic_id"`
	Rating       int    `json:"rating"`
	AuthorName   string `json:"author_name"`
	Body         string `json:"body"`
	Status       string `json:"status"`
	HelpfulCount int    `json:"helpful_count"`
	ReportCount  int    `json:"report_count"`
	CreatedAt    string `json:"created_at"`
}

// ReviewListResponse represents a paginated review list
type ReviewListResponse struct {
	Data       []ReviewResponse `json:"data"`
	Pagination PaginationInfo   `json:"pagination"`
}
