package models

// User is the projection of a member account this service reads from the
// identity directory. It is never written here.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	MemberID    string `json:"member_id,omitempty"`
	ChapterID   string `json:"chapter_id,omitempty"`
	ChapterName string `json:"chapter_name,omitempty"`
	FCMToken    string `json:"-"`
	Active      bool   `json:"active"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID    string
	Role      Role
	ChapterID string
}
