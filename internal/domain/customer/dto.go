// Package customer holds request payloads for the customer resource.
package customer

import "time"

type CreateRequest struct {
	FirstName     string     `json:"first_name" binding:"required,max=100"`
	LastName      string     `json:"last_name" binding:"required,max=100"`
	Email         string     `json:"email" binding:"required,email"`
	PhoneNumber   string     `json:"phone_number" binding:"required,max=20"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	Address       *string    `json:"address"`
	City          *string    `json:"city"`
	Country       *string    `json:"country"`
	Segment       string     `json:"segment" binding:"omitempty,oneof=Retail SME Corporate HighNetWorth"`
	KYCStatus     string     `json:"kyc_status" binding:"omitempty,oneof=Pending Verified Rejected Expired"`
	CreditScore   *float64   `json:"credit_score"`
	LifetimeValue *float64   `json:"lifetime_value"`
	RiskScore     *int       `json:"risk_score"`
}

// UpdateRequest uses pointer fields; absent fields stay unchanged.
type UpdateRequest struct {
	FirstName     *string    `json:"first_name" binding:"omitempty,max=100"`
	LastName      *string    `json:"last_name" binding:"omitempty,max=100"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	PhoneNumber   *string    `json:"phone_number" binding:"omitempty,max=20"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	Address       *string    `json:"address"`
	City          *string    `json:"city"`
	Country       *string    `json:"country"`
	Segment       *string    `json:"segment" binding:"omitempty,oneof=Retail SME Corporate HighNetWorth"`
	KYCStatus     *string    `json:"kyc_status" binding:"omitempty,oneof=Pending Verified Rejected Expired"`
	CreditScore   *float64   `json:"credit_score"`
	LifetimeValue *float64   `json:"lifetime_value"`
	RiskScore     *int       `json:"risk_score"`
	IsActive      *bool      `json:"is_active"`
}
