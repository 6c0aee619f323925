package domain

import "time"

// Announcement describes a lost or found item. Type is true for found
// items and false for lost ones.
type Announcement struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"user_id"`
	Item   string    `json:"item"`
	Place  string    `json:"place"`
	Time   time.Time `json:"time"`
	Type   bool      `json:"type"`
}

type Response struct {
	ID               int64     `json:"id"`
	AnnouncementID   int64     `json:"announcement_id"`
	RespondingUserID int64     `json:"responding_user_id"`
	Message          string    `json:"message"`
	Time             time.Time `json:"time"`
}
