package models

import "time"

type Event struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	City             string    `json:"city"`
	EventDate        time.Time `json:"event_date"`
	EventTime        *string   `json:"event_time"`
	IsPast           bool      `json:"is_past"`
	RegistrationLink *string   `json:"registration_link"`
	MaxAttendees     *int      `json:"max_attendees"`
	Images           []string  `json:"images"`
	Videos           []string  `json:"videos"`
	RegisteredCount  int       `json:"registered_count"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

type EventCreate struct {
	Title            string    `json:"title" binding:"required"`
	Description      string    `json:"description" binding:"required"`
	Location         string    `json:"location" binding:"required"`
	City             string    `json:"city" binding:"required"`
	EventDate        time.Time `json:"event_date" binding:"required"`
	EventTime        *string   `json:"event_time"`
	IsPast           bool      `json:"is_past"`
	RegistrationLink *string   `json:"registration_link"`
	MaxAttendees     *int      `json:"max_attendees"`
	Images           []string  `json:"images"`
	Videos           []string  `json:"videos"`
}

type EventUpdate struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Location         *string    `json:"location"`
	City             *string    `json:"city"`
	EventDate        *time.Time `json:"event_date"`
	EventTime        *string    `json:"event_time"`
	IsPast           *bool      `json:"is_past"`
	RegistrationLink *string    `json:"registration_link"`
	MaxAttendees     *int       `json:"max_attendees"`
	Images           *[]string  `json:"images"`
	Videos           *[]string  `json:"videos"`
}

type EventRegistration struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type EventRegistrationCreate struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
}
