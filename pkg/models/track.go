package models

// TrackRequest represents one tracking beacon from the marketing site
type TrackRequest struct {
	SessionID  string                 `json:"session_id"`
	Action     string                 `json:"action" validate:"required"`
	Data       map[string]interface{} `json:"data"`
	ClinicSlug string                 `json:"clinic_slug"`
	PageURL    string                 `json:"page_url"`
	Referrer   string                 `json:"referrer"`
	Device     string                 `json:"device"`
	Browser    string                 `json:"browser"`
}

// TrackResponse acknowledges a tracking beacon. The session id echoes back
// so the client can adopt a replacement id after expiry.
type TrackResponse struct {
	SessionID string `json:"session_id"`
}
