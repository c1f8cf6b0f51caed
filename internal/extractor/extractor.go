// Package extractor turns raw inbound email into candidate lead records.
// It is a best-effort heuristic parser, not a validating one: every field
// of a candidate may be absent, and callers must treat it that way.
package extractor

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// NoVehicle is returned when no brand keyword matches.
	NoVehicle = "Not specified"

	bodyPreviewLen = 500
)

var (
	emailPattern = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	phonePattern = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)
)

// vehicleBrands is scanned in order; the first match wins.
var vehicleBrands = []string{
	"Toyota", "Honda", "Ford", "Chevrolet", "Nissan",
	"BMW", "Mercedes", "Audi", "Volkswagen", "Hyundai",
	"Kia", "Mazda", "Subaru", "Lexus", "Jeep", "Tesla",
}

// LeadCandidate is the structured result of extracting a single email.
// Empty Email or Phone means the corresponding token was not found.
type LeadCandidate struct {
	Name            string
	Email           string
	Phone           string
	VehicleInterest string
	Notes           string
}

// Extract parses an inbound email into a lead candidate. It returns
// (nil, false) when nothing usable could be extracted: a candidate is
// usable when at least one contact token (email or phone) was found.
// Extract never panics outward; internal faults degrade to (nil, false).
func Extract(sender, subject, body string) (candidate *LeadCandidate, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			candidate, ok = nil, false
		}
	}()

	c := &LeadCandidate{
		Email:           emailPattern.FindString(sender),
		Phone:           phonePattern.FindString(body),
		Name:            deriveName(sender),
		VehicleInterest: detectVehicle(subject + " " + body),
		Notes:           composeNotes(subject, body),
	}

	if c.Email == "" && c.Phone == "" {
		return nil, false
	}
	return c, true
}

// deriveName guesses a display name from the sender's local part,
// replacing underscores and periods with spaces. Best effort only.
func deriveName(sender string) string {
	addr := emailPattern.FindString(sender)
	if addr == "" {
		addr = sender
	}
	at := strings.Index(addr, "@")
	if at < 0 {
		return ""
	}
	local := addr[:at]
	local = strings.ReplaceAll(local, "_", " ")
	local = strings.ReplaceAll(local, ".", " ")
	return strings.TrimSpace(local)
}

func detectVehicle(text string) string {
	lower := strings.ToLower(text)
	for _, brand := range vehicleBrands {
		if strings.Contains(lower, strings.ToLower(brand)) {
			return brand
		}
	}
	return NoVehicle
}

// composeNotes embeds the subject and the first 500 characters of the body.
// The truncation marker is appended even when the body was shorter than the
// preview window. The upstream system behaved this way and downstream
// consumers key off the marker, so it is kept as-is.
func composeNotes(subject, body string) string {
	preview := body
	if len(preview) > bodyPreviewLen {
		preview = preview[:bodyPreviewLen]
	}
	return fmt.Sprintf("Subject: %s\n\n%s...", subject, preview)
}
