package models

import "time"

// User is an account that owns a schedule and receives meeting requests.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"` // public slug used in booking links
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	FullName     string    `bson:"fullName,omitempty" json:"fullName,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// UserRegistrationData is the register payload.
type UserRegistrationData struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
