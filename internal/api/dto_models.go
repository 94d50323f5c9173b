package api

// ErrorResponse is the generic error payload of the API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is the generic payload for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// InviteResponse carries the created member plus the one-time
// temporary password. The password is shown exactly once and never
// stored server-side.
type InviteResponse struct {
	User              interface{} `json:"user"`
	TemporaryPassword string      `json:"temporaryPassword"`
}
