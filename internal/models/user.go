package models

// Profile is the static demo user record served by GET /profile.
type Profile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Joined string `json:"joined"`
}
