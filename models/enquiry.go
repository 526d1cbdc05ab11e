package models

import "time"

type Enquiry struct {
	ID            int64     `json:"id"`
	PropertyID    int64     `json:"property_id"`
	BuyerID       int64     `json:"buyer_id"`
	SellerID      *int64    `json:"seller_id"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
	PropertyTitle string    `json:"property_title,omitempty"`
}

type EnquiryCreate struct {
	PropertyID int64  `json:"property_id" binding:"required"`
	Message    string `json:"message" binding:"required"`
}
