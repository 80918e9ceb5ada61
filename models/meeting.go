package models

import "time"

// Meeting is a visitor's request for a slot on a user's calendar. Accepting it
// carves the requested interval out of that date's availability.
type Meeting struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"` // schedule owner
	Name      string    `bson:"name" json:"name"`     // requester
	Email     string    `bson:"email" json:"email"`
	Subject   string    `bson:"subject,omitempty" json:"subject,omitempty"`
	Date      string    `bson:"date" json:"date"` // "2006-01-02"
	StartTime string    `bson:"startTime" json:"start_time"`
	EndTime   string    `bson:"endTime" json:"end_time"`
	Accepted  bool      `bson:"accepted" json:"accepted"`
	Active    bool      `bson:"active" json:"active"` // inactive meetings are archived, not deleted
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// MeetingCreateRequest is the public booking payload, addressed to a user by
// their public slug.
type MeetingCreateRequest struct {
	UserSlug  string `json:"user_slug" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Subject   string `json:"subject"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}
