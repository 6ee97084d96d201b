package handler

import (
	"errors"
	"strings"
	"testing"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{Email: "nope", Password: ""})
	if err == nil {
		t.Fatalf("expected validation failure")
	}

	var vp *ValidationProblem
	if !errors.As(err, &vp) {
		t.Fatalf("expected *ValidationProblem, got %T", err)
	}

	if _, ok := vp.Fields["email"]; !ok {
		t.Fatalf("expected key email, got %v", vp.Fields)
	}
	if _, ok := vp.Fields["password"]; !ok {
		t.Fatalf("expected key password, got %v", vp.Fields)
	}
	if _, ok := vp.Fields["Email"]; ok {
		t.Fatalf("struct field name leaked into mapping: %v", vp.Fields)
	}
}

func TestValidator_MessageTexts(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&taskRequest{Titulo: ""})
	var vp *ValidationProblem
	if !errors.As(err, &vp) {
		t.Fatalf("expected *ValidationProblem, got %v", err)
	}
	if msgs := vp.Fields["titulo"]; len(msgs) != 1 || msgs[0] != "titulo is required" {
		t.Fatalf("unexpected messages: %v", vp.Fields["titulo"])
	}

	err = v.Validate(&taskRequest{Titulo: strings.Repeat("x", 101)})
	if !errors.As(err, &vp) {
		t.Fatalf("expected *ValidationProblem, got %v", err)
	}
	if msgs := vp.Fields["titulo"]; len(msgs) != 1 || !strings.Contains(msgs[0], "at most 100") {
		t.Fatalf("unexpected messages: %v", vp.Fields["titulo"])
	}
}

func TestValidator_ValidInput(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&taskRequest{Titulo: "buy milk"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Validate(&loginRequest{Email: "a@example.com", Password: "pw"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
