package extractor

import (
	"strings"
	"testing"
)

func TestExtract_Email(t *testing.T) {
	tests := []struct {
		name      string
		sender    string
		wantEmail string
	}{
		{"plain address", "jane.doe@example.com", "jane.doe@example.com"},
		{"display name wrapper", "Jane Doe <jane.doe@example.com>", "jane.doe@example.com"},
		{"uppercase kept", "JANE@EXAMPLE.COM", "JANE@EXAMPLE.COM"},
		{"first token wins", "a@b.com via relay c@d.org", "a@b.com"},
		{"no at sign", "not an address", ""},
		{"tld too short", "x@y.z", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Extract(tt.sender, "subject", "body with 619-555-0188")
			if !ok {
				t.Fatal("expected a candidate, phone is always present in this body")
			}
			if c.Email != tt.wantEmail {
				t.Errorf("Email = %q, want %q", c.Email, tt.wantEmail)
			}
		})
	}
}

func TestExtract_Phone(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantPhone string
	}{
		{"hyphenated", "call me at 619-555-0188 please", "619-555-0188"},
		{"dotted", "phone: 619.555.0188", "619.555.0188"},
		{"bare digits", "6195550188", "6195550188"},
		{"first match wins", "619-555-0188 or 858-555-0000", "619-555-0188"},
		{"too short", "call 555-0188", ""},
		{"no digits", "no number here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Extract("jane@example.com", "subject", tt.body)
			if !ok {
				t.Fatal("expected a candidate, sender email is always present")
			}
			if c.Phone != tt.wantPhone {
				t.Errorf("Phone = %q, want %q", c.Phone, tt.wantPhone)
			}
		})
	}
}

func TestExtract_Name(t *testing.T) {
	tests := []struct {
		sender   string
		wantName string
	}{
		{"jane.doe@example.com", "jane doe"},
		{"jane_doe@example.com", "jane doe"},
		{"jane@example.com", "jane"},
	}

	for _, tt := range tests {
		c, ok := Extract(tt.sender, "", "619-555-0188")
		if !ok {
			t.Fatalf("Extract(%q) returned no candidate", tt.sender)
		}
		if c.Name != tt.wantName {
			t.Errorf("Name = %q, want %q", c.Name, tt.wantName)
		}
	}
}

func TestExtract_Vehicle(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		body    string
		want    string
	}{
		{"brand in subject", "Interested in a Toyota Camry", "", "Toyota"},
		{"brand in body", "inquiry", "looking at a used honda civic", "Honda"},
		{"case insensitive", "FORD F-150?", "", "Ford"},
		{"vocabulary order breaks ties", "Honda or Toyota?", "", "Honda"},
		{"no brand", "general question", "when do you open", NoVehicle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Extract("jane@example.com", tt.subject, tt.body)
			if !ok {
				t.Fatal("expected a candidate")
			}
			if c.VehicleInterest != tt.want {
				t.Errorf("VehicleInterest = %q, want %q", c.VehicleInterest, tt.want)
			}
		})
	}
}

func TestExtract_Notes(t *testing.T) {
	t.Run("short body still gets truncation marker", func(t *testing.T) {
		c, ok := Extract("jane@example.com", "Test drive", "short body")
		if !ok {
			t.Fatal("expected a candidate")
		}
		if !strings.Contains(c.Notes, "Test drive") {
			t.Errorf("Notes missing subject: %q", c.Notes)
		}
		if !strings.HasSuffix(c.Notes, "short body...") {
			t.Errorf("Notes missing marker after short body: %q", c.Notes)
		}
	})

	t.Run("long body truncated at 500", func(t *testing.T) {
		body := strings.Repeat("x", 800)
		c, ok := Extract("jane@example.com", "subject", body)
		if !ok {
			t.Fatal("expected a candidate")
		}
		if !strings.HasSuffix(c.Notes, strings.Repeat("x", 500)+"...") {
			t.Error("Notes not truncated to 500-char preview with marker")
		}
		if strings.Contains(c.Notes, strings.Repeat("x", 501)) {
			t.Error("Notes contains more than 500 body characters")
		}
	})
}

func TestExtract_NothingUsable(t *testing.T) {
	tests := []struct {
		name    string
		sender  string
		subject string
		body    string
	}{
		{"all empty", "", "", ""},
		{"no contact tokens", "front desk", "hello", "just saying hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Extract(tt.sender, tt.subject, tt.body)
			if ok || c != nil {
				t.Errorf("Extract() = (%+v, %v), want (nil, false)", c, ok)
			}
		})
	}
}

func TestExtract_PhoneOnlyIsUsable(t *testing.T) {
	c, ok := Extract("walk-in visitor", "callback request", "please call 619-555-0188")
	if !ok {
		t.Fatal("phone-only email should yield a candidate")
	}
	if c.Email != "" {
		t.Errorf("Email = %q, want empty", c.Email)
	}
	if c.Phone != "619-555-0188" {
		t.Errorf("Phone = %q", c.Phone)
	}
}
