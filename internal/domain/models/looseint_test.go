package models

import "testing"

func TestParseLooseInt(t *testing.T) {
	tests := []struct {
		in    string
		want  int
		valid bool
	}{
		{"10", 10, true},
		{"  42 ", 42, true},
		{"12 students", 12, true},
		{"-3", -3, true},
		{"+7", 7, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"x12", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseLooseInt(tt.in)
			if got.Valid != tt.valid {
				t.Fatalf("ParseLooseInt(%q).Valid = %v, want %v", tt.in, got.Valid, tt.valid)
			}
			if tt.valid && got.Value != tt.want {
				t.Errorf("ParseLooseInt(%q) = %d, want %d", tt.in, got.Value, tt.want)
			}
		})
	}
}

func TestLooseInt_String(t *testing.T) {
	if got := Int(200).String(); got != "200" {
		t.Errorf("Int(200).String() = %q, want %q", got, "200")
	}
	if got := ParseLooseInt("many").String(); got != "NaN" {
		t.Errorf("invalid String() = %q, want NaN", got)
	}
}

func TestLooseInt_MarshalJSON(t *testing.T) {
	b, err := Int(5).MarshalJSON()
	if err != nil || string(b) != "5" {
		t.Errorf("MarshalJSON = %s, %v", b, err)
	}
	b, err = LooseInt{}.MarshalJSON()
	if err != nil || string(b) != "null" {
		t.Errorf("invalid MarshalJSON = %s, %v", b, err)
	}
}
