package models

import (
	"strings"
	"time"
)

// DateFormat is the calendar date encoding used throughout the application.
const DateFormat = "2006-01-02"

// Change represents one logged inventory entry.
type Change struct {
	ID          int       `json:"id"`
	Date        string    `json:"date"`
	ProductType string    `json:"product_type"`
	ChangeType  string    `json:"change_type"`
	Designation string    `json:"designation"`
	Analyst     string    `json:"analyst"`
	AppLink     string    `json:"app_link"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChangeForm represents payload data for creating a change record.
type ChangeForm struct {
	Date        string `json:"date" validate:"required"`
	ProductType string `json:"product_type" validate:"required"`
	ChangeType  string `json:"change_type" validate:"required"`
	Designation string `json:"designation" validate:"required"`
	Analyst     string `json:"analyst" validate:"required"`
	AppLink     string `json:"app_link"`
}

// Validate checks the form and returns field error messages.
func (f *ChangeForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Date) == "" {
		errors = append(errors, "Date is required")
	} else if _, err := time.Parse(DateFormat, strings.TrimSpace(f.Date)); err != nil {
		errors = append(errors, "Date must use the YYYY-MM-DD format")
	}

	if strings.TrimSpace(f.ProductType) == "" {
		errors = append(errors, "Product type is required")
	}
	if strings.TrimSpace(f.ChangeType) == "" {
		errors = append(errors, "Change type is required")
	}
	if strings.TrimSpace(f.Designation) == "" {
		errors = append(errors, "Designation is required")
	}
	if strings.TrimSpace(f.Analyst) == "" {
		errors = append(errors, "Analyst is required")
	}

	return errors
}

// ToChange converts a validated form into a change record, trimming whitespace.
func (f *ChangeForm) ToChange() Change {
	return Change{
		Date:        strings.TrimSpace(f.Date),
		ProductType: strings.TrimSpace(f.ProductType),
		ChangeType:  strings.TrimSpace(f.ChangeType),
		Designation: strings.TrimSpace(f.Designation),
		Analyst:     strings.TrimSpace(f.Analyst),
		AppLink:     strings.TrimSpace(f.AppLink),
	}
}

// ChangeFilter holds the optional listing filters. Zero values mean "no
// constraint". Dates are inclusive bounds in YYYY-MM-DD form.
type ChangeFilter struct {
	ProductType string
	ChangeType  string
	Designation string
	Analyst     string
	DateFrom    string
	DateTo      string
}
