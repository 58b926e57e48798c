package entity

import "time"

// ContactMessage is one submission of the contact form.
type ContactMessage struct {
	ID         int64     `json:"id,omitempty"`
	Name       string    `json:"name" form:"name" binding:"required,max=100"`
	Email      string    `json:"email" form:"email" binding:"required,email,max=254"`
	Subject    string    `json:"subject" form:"subject" binding:"required,max=200"`
	Message    string    `json:"message" form:"message" binding:"required,max=5000"`
	SessionID  string    `json:"-" form:"-"`
	ReceivedAt time.Time `json:"received_at" form:"-"`
}
