package utils

import (
	"fmt"
	"testing"
)

func TestErrorTaxonomy(t *testing.T) {
	ve := NewValidationError("bad date %q", "2025-13-01")
	ce := NewConflictError("duplicate day")
	nfe := NewNotFoundError("doctor %s", "doc1")

	if !IsValidation(ve) || IsConflict(ve) || IsNotFound(ve) {
		t.Error("validation error misclassified")
	}
	if !IsConflict(ce) || IsValidation(ce) || IsNotFound(ce) {
		t.Error("conflict error misclassified")
	}
	if !IsNotFound(nfe) || IsValidation(nfe) || IsConflict(nfe) {
		t.Error("not-found error misclassified")
	}
}

func TestErrorTaxonomySurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("createDay: %w", NewConflictError("duplicate day"))
	if !IsConflict(wrapped) {
		t.Fatal("conflict classification lost through wrapping")
	}
	if IsNotFound(wrapped) {
		t.Fatal("wrapped conflict mistaken for not-found")
	}
}
