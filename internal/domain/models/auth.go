package models

// User is the operator identity the backend returns on login.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResult carries the bearer token issued for an operator session.
type LoginResult struct {
	Token string
	User  User
}
