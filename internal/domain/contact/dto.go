package contact

// SubmitContactRequest is the public contact-form payload.
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UpdateContactRequest is the admin triage payload; only the status is
// updatable.
type UpdateContactRequest struct {
	Status *string `json:"status"`
}
