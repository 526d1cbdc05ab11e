package models

import "time"

type InvestmentOpportunity struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	InvestmentType   string    `json:"investment_type"`
	MinInvestment    float64   `json:"min_investment"`
	ExpectedROI      *float64  `json:"expected_roi"`
	InvestmentPeriod *string   `json:"investment_period"`
	Highlights       []string  `json:"highlights"`
	RiskLevel        *string   `json:"risk_level"`
	Images           []string  `json:"images"`
	Documents        []string  `json:"documents"`
	InvestorsCount   int       `json:"investors_count"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type InvestmentOpportunityCreate struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Location         string   `json:"location" binding:"required"`
	City             string   `json:"city" binding:"required"`
	State            string   `json:"state" binding:"required"`
	InvestmentType   string   `json:"investment_type" binding:"required"`
	MinInvestment    float64  `json:"min_investment" binding:"required,gt=0"`
	ExpectedROI      *float64 `json:"expected_roi"`
	InvestmentPeriod *string  `json:"investment_period"`
	Highlights       []string `json:"highlights"`
	RiskLevel        *string  `json:"risk_level"`
	Images           []string `json:"images"`
	Documents        []string `json:"documents"`
}

type InvestorRegistration struct {
	ID                      int64     `json:"id"`
	OpportunityID           *int64    `json:"opportunity_id"`
	UserID                  *int64    `json:"user_id"`
	FullName                string    `json:"full_name"`
	Email                   string    `json:"email"`
	Phone                   string    `json:"phone"`
	InvestmentBudget        *float64  `json:"investment_budget"`
	PreferredInvestmentType *string   `json:"preferred_investment_type"`
	Message                 *string   `json:"message"`
	IsContacted             bool      `json:"is_contacted"`
	CreatedAt               time.Time `json:"created_at"`
}

type InvestorRegistrationCreate struct {
	OpportunityID           *int64   `json:"opportunity_id"`
	FullName                string   `json:"full_name" binding:"required"`
	Email                   string   `json:"email" binding:"required,email"`
	Phone                   string   `json:"phone" binding:"required"`
	InvestmentBudget        *float64 `json:"investment_budget"`
	PreferredInvestmentType *string  `json:"preferred_investment_type"`
	Message                 *string  `json:"message"`
}
