package auth

import "github.com/google/uuid"

// googleProfile is the subset of the Google userinfo response we read.
type googleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// CurrentUserResponse is the session user as exposed to the frontend.
type CurrentUserResponse struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Picture string    `json:"picture"`
}
