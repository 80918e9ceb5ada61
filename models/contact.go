package models

import "time"

// Contact is a message left through a user's public contact form.
type Contact struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId,omitempty" json:"userId,omitempty"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Subject   string    `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ContactCreateRequest is the public contact form payload.
type ContactCreateRequest struct {
	UserSlug string `json:"user_slug"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Subject  string `json:"subject"`
	Message  string `json:"message" binding:"required"`
}
