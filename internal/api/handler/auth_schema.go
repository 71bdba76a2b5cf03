package handler

// --- Request / Response types ---

type signUpRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// messageResponse is the plain success envelope shared by several endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

// userResponse is the public-safe user view: email only, never the hash.
type userResponse struct {
	Email string `json:"email"`
}

type loginResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}
