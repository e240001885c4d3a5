package models

import (
	"testing"
)

// Test ChangeForm validation
func TestChangeFormValidation(t *testing.T) {
	// Test valid form
	validForm := ChangeForm{
		Date:        "2024-03-15",
		ProductType: "Docker",
		ChangeType:  "IOC",
		Designation: "Blocked malicious hash",
		Analyst:     "jdupont",
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Test empty form
	emptyForm := ChangeForm{}
	errors = emptyForm.Validate()
	if len(errors) != 5 {
		t.Errorf("Expected 5 errors for empty form, got: %v", errors)
	}

	// Test bad date format
	badDate := validForm
	badDate.Date = "15/03/2024"
	errors = badDate.Validate()
	if len(errors) != 1 {
		t.Errorf("Expected 1 error for bad date, got: %v", errors)
	}

	// Whitespace-only fields count as empty
	blankAnalyst := validForm
	blankAnalyst.Analyst = "   "
	errors = blankAnalyst.Validate()
	if len(errors) != 1 {
		t.Errorf("Expected 1 error for blank analyst, got: %v", errors)
	}
}

func TestChangeFormToChangeTrims(t *testing.T) {
	form := ChangeForm{
		Date:        " 2024-03-15 ",
		ProductType: " Docker",
		ChangeType:  "IOC ",
		Designation: " entry ",
		Analyst:     " jdupont ",
		AppLink:     " https://example.com/case/42 ",
	}

	change := form.ToChange()
	if change.Date != "2024-03-15" {
		t.Errorf("Expected trimmed date, got %q", change.Date)
	}
	if change.AppLink != "https://example.com/case/42" {
		t.Errorf("Expected trimmed link, got %q", change.AppLink)
	}
}

func TestValidCategory(t *testing.T) {
	if !ValidCategory(CategoryProduct) || !ValidCategory(CategoryChangeType) {
		t.Error("Expected built-in categories to be valid")
	}
	if ValidCategory("users") {
		t.Error("Expected unknown category to be invalid")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("Date is required", "Analyst is required")
	want := "Date is required; Analyst is required"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}

	if NewValidationError().Error() != "validation failed" {
		t.Error("Expected fallback message for empty validation error")
	}
}
