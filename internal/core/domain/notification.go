package domain

// NotificationEvent is published when someone responds to an announcement.
// The wire field for the recipient is "user_id" for compatibility with the
// original consumer; it carries the announcement owner's id.
type NotificationEvent struct {
	RecipientUserID  int64  `json:"user_id"`
	RespondingUserID int64  `json:"responding_user_id"`
	AnnouncementID   int64  `json:"announcement_id"`
	Content          string `json:"content"`
}
