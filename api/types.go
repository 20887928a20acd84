package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler  projectHandler
	teamHandler     teamHandler
	eventHandler    eventHandler
	feedbackHandler feedbackHandler
	serviceHandler  serviceHandler
	packageHandler  packageHandler
	networkHandler  networkHandler
	uploadHandler   uploadHandler
	emailHandler    emailHandler
	chatHandler     chatHandler
	healthHandler   healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Internal Server Error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Code    string `json:"code,omitempty" example:"DATABASE_NOT_CONFIGURED"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}
