package inputval

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		// Valid emails
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.com", true},
		{"user@subdomain.example.com", true},
		{"user123@example.co.uk", true},
		{"a@b.co", true},
		{"user@localhost", true},
		{"admin@mailserver", true},

		// Invalid emails - empty/whitespace
		{"", false},
		{"   ", false},

		// Invalid emails - missing parts
		{"user", false},
		{"user@", false},
		{"@example.com", false},

		// Invalid emails - bad format
		{".user@example.com", false},
		{"user.@example.com", false},
		{"user..name@example.com", false},
		{"user@.example.com", false},
		{"user@example..com", false},

		// Invalid emails - display name format
		{"User Name <user@example.com>", false},

		// Invalid emails - other malformed
		{"user @example.com", false},
		{"user@ example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := IsValidEmail(tt.email)
			if got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

type sample struct {
	Name   string `validate:"required,max=10" label:"Name"`
	Email  string `validate:"required,contact_email" label:"Email"`
	Status string `validate:"omitempty,oneof=upcoming completed" label:"Status"`
	Date   string `validate:"omitempty,datetime=2006-01-02" label:"Event date"`
}

func TestValidate_OK(t *testing.T) {
	res := Validate(sample{Name: "Meron", Email: "meron@email.com", Status: "upcoming", Date: "2024-10-15"})
	if res.HasErrors() {
		t.Errorf("unexpected errors: %v", res.Messages())
	}
	if res.First() != "" {
		t.Errorf("First() = %q, want empty", res.First())
	}
}

func TestValidate_Messages(t *testing.T) {
	res := Validate(sample{Email: "nope", Status: "cancelled", Date: "15/10/2024"})
	want := []string{
		"Name is required.",
		"Email must be a valid email address.",
		"Status must be one of: upcoming, completed.",
		"Event date must be a date (YYYY-MM-DD).",
	}
	got := res.Messages()
	if len(got) != len(want) {
		t.Fatalf("messages = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if res.Errors[0].Field != "Name" {
		t.Errorf("field label = %q, want Name", res.Errors[0].Field)
	}
}

func TestValidate_Max(t *testing.T) {
	res := Validate(sample{Name: "A very long name indeed", Email: "a@b.co"})
	if res.First() != "Name must be at most 10 characters." {
		t.Errorf("First() = %q", res.First())
	}
}
