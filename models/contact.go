package models

import "time"

type ContactSubmission struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	IsResponded bool      `json:"is_responded"`
	CreatedAt   time.Time `json:"created_at"`
}

type ContactCreate struct {
	FullName string  `json:"full_name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone"`
	Subject  string  `json:"subject" binding:"required"`
	Message  string  `json:"message" binding:"required"`
}
