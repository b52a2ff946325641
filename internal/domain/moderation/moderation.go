// Package moderation detects contact information in free text so deals
// cannot be taken off-platform before payment.
package moderation

import "regexp"

// RedactedMarker replaces the description of a blocked proposal.
const RedactedMarker = "[conteúdo removido pela moderação]"

const (
	ReasonPhone = "phone_number"
	ReasonEmail = "email_address"
)

// minPhoneDigits covers Brazilian landline/mobile numbers with area code,
// with or without the leading country code.
const minPhoneDigits = 10

var (
	// Candidate phone runs: digits possibly interspersed with parentheses,
	// spaces and hyphens. Each run is stripped and its digits counted, so
	// formats like "(27) 99999-1234" and "+55 27 99999 1234" all match.
	phoneRunPattern = regexp.MustCompile(`[0-9][0-9()\s-]*[0-9]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// Result is the outcome of scanning a single free-text field.
type Result struct {
	Blocked bool
	Reason  string
}

// Scan checks text for contact-information patterns. It is a pure
// function: safe for concurrent use, no locking required.
func Scan(text string) Result {
	for _, run := range phoneRunPattern.FindAllString(text, -1) {
		if len(digitPattern.FindAllString(run, -1)) >= minPhoneDigits {
			return Result{Blocked: true, Reason: ReasonPhone}
		}
	}
	if emailPattern.MatchString(text) {
		return Result{Blocked: true, Reason: ReasonEmail}
	}
	return Result{}
}
