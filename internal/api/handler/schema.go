package handler

// apiResponse is the success envelope every endpoint returns:
// {"success": true, "message": ..., "data": ..., "meta": ...}.
// Absent sections are omitted from the wire form.
type apiResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data,omitempty"`
	Meta    *pageMeta `json:"meta,omitempty"`
}

// errorResponse documents the error envelope rendered by the central
// error handler.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// pageMeta carries pagination details alongside list responses.
type pageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// userSummary is the public shape of a user embedded in the login
// response. The password hash never appears on the wire.
type userSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginData struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         userSummary `json:"user"`
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

// The domain service owns validation of both fields below and their
// canonical error messages, so these requests carry no validate tags.
type addDomainRequest struct {
	DomainName string `json:"domainName"`
}

type updateDomainStatusRequest struct {
	Status string `json:"status"`
}
