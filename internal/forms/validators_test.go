package forms

import (
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
}

func TestText(t *testing.T) {
	v := Text("name", 3)
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too short", "Al", true},
		{"exactly min", "Ali", false},
		{"normal", "Alice Smith", false},
		// whitespace counts toward length but not presence
		{"padded short value", " a ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v([]string{tt.in})
			if (got != "") != tt.wantErr {
				t.Errorf("Text(%q) = %q, wantErr=%v", tt.in, got, tt.wantErr)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	v := Email("email")
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", true},
		{"bad", true},
		{"no-at.example.com", true},
		{"alice@x.com", false},
		{"alice.smith@dept.example.edu", false},
	}
	for _, tt := range tests {
		got := v([]string{tt.in})
		if (got != "") != tt.wantErr {
			t.Errorf("Email(%q) = %q, wantErr=%v", tt.in, got, tt.wantErr)
		}
	}
}

func TestPhone(t *testing.T) {
	v := Phone("phone")
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", true},
		{"123", true},
		{"1712345678", true},  // no leading zero
		{"071234567", true},   // nine digits
		{"07123456789", true}, // eleven digits
		{"07123x5678", true},  // non-digit
		{"0712345678", false},
	}
	for _, tt := range tests {
		got := v([]string{tt.in})
		if (got != "") != tt.wantErr {
			t.Errorf("Phone(%q) = %q, wantErr=%v", tt.in, got, tt.wantErr)
		}
	}
}

func TestChoiceAndAtLeastOne(t *testing.T) {
	if got := Choice("department")(nil); got == "" {
		t.Error("Choice should fail on unset value")
	}
	if got := Choice("department")([]string{"IT"}); got != "" {
		t.Errorf("Choice should pass on selection, got %q", got)
	}
	if got := AtLeastOne("expertise area")([]string{}); got == "" {
		t.Error("AtLeastOne should fail on empty set")
	}
	if got := AtLeastOne("expertise area")([]string{"Web Development"}); got != "" {
		t.Errorf("AtLeastOne should pass, got %q", got)
	}
}

func TestPositiveInt(t *testing.T) {
	v := PositiveInt("capacity")
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", true},
		{"abc", true},
		{"0", true},
		{"-5", true},
		{"1", false},
		{"120", false},
	}
	for _, tt := range tests {
		got := v([]string{tt.in})
		if (got != "") != tt.wantErr {
			t.Errorf("PositiveInt(%q) = %q, wantErr=%v", tt.in, got, tt.wantErr)
		}
	}
}

func TestFutureDate(t *testing.T) {
	v := FutureDate("date", fixedNow)
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"empty", "", true},
		{"malformed", "01/09/2026", true},
		{"yesterday", "2026-08-31", true},
		{"today", "2026-09-01", false},
		{"tomorrow", "2026-09-02", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v([]string{tt.in})
			if (got != "") != tt.wantErr {
				t.Errorf("FutureDate(%q) = %q, wantErr=%v", tt.in, got, tt.wantErr)
			}
		})
	}
}

func TestTimeOrder(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantErr    bool
	}{
		{"missing start", "", "10:00", true},
		{"missing end", "09:00", "", true},
		{"equal", "09:00", "09:00", true},
		{"reversed", "10:00", "09:00", true},
		{"ordered", "09:00", "10:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeOrder(tt.start, tt.end)
			if (got != "") != tt.wantErr {
				t.Errorf("TimeOrder(%q, %q) = %q, wantErr=%v", tt.start, tt.end, got, tt.wantErr)
			}
		})
	}
}
