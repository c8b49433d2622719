package models

// User is the authenticated profile returned by the auth-check endpoint.
type User struct {
	ID       int    `json:"id,omitempty"`
	Username string `json:"username"`
}

// Credentials is the login/register payload.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token. The token is opaque to
// the client; it is stored and replayed, never inspected.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
