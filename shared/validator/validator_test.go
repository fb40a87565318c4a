package validator_test

import (
	"resthouse/shared/validator"
	"strings"
	"testing"
)

type registerTestStruct struct {
	Name     string `validate:"required"                  json:"name"`
	Email    string `validate:"required,email"            json:"email"`
	Guests   int    `validate:"gte=1,lte=20"              json:"guests"`
	Category string `validate:"oneof=guest employee ex_employee" json:"category"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *registerTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &registerTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Guests:   2,
				Category: "guest",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &registerTestStruct{
				Email:    "john@example.com",
				Guests:   2,
				Category: "guest",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &registerTestStruct{
				Name:     "John Doe",
				Email:    "invalid-email",
				Guests:   2,
				Category: "guest",
			},
			expectError: true,
		},
		{
			name: "guests out of range",
			data: &registerTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Guests:   50,
				Category: "guest",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &registerTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Guests:   2,
				Category: "visitor",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "approved",
			tag:         "oneof=pending approved rejected",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "cancelled",
			tag:         "oneof=pending approved rejected",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"John Doe","email":"john@example.com","guests":2,"category":"guest"}`,
			expectError: false,
		},
		{
			name:        "invalid field value",
			jsonBody:    `{"name":"John Doe","email":"invalid-email","guests":2,"category":"guest"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"John Doe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data registerTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestMimetypeValidation(t *testing.T) {
	pngDataURI := "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg=="
	pdfDataURI := "data:application/pdf;base64,JVBERi0xLjQK"

	tests := []struct {
		name        string
		field       string
		tag         string
		expectError bool
	}{
		{
			name:        "allowed image type",
			field:       pngDataURI,
			tag:         "mimetypes=image/png image/jpeg",
			expectError: false,
		},
		{
			name:        "disallowed type",
			field:       pdfDataURI,
			tag:         "mimetypes=image/png image/jpeg",
			expectError: true,
		},
		{
			name:        "not a data uri",
			field:       "plain text",
			tag:         "mimetypes=image/png",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestMaxFileSizeValidation(t *testing.T) {
	small := strings.Repeat("a", 512)
	large := strings.Repeat("a", 2*1024*1024)

	if err := validator.ValidateVar(small, "maxfilesize=1"); err != nil {
		t.Errorf("expected small payload to pass, got: %v", err)
	}

	if err := validator.ValidateVar(large, "maxfilesize=1"); err == nil {
		t.Error("expected large payload to fail")
	}
}
