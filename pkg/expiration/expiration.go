package expiration

import (
	"fmt"

	"Scanstock-Backend/domain"
)

const (
	dayMillis      = 24 * 60 * 60 * 1000
	expiringWindow = 7 * dayMillis
)

type Result struct {
	Status   string
	DaysLeft *int // nil when expired or no expiration
}

// Classify derives a freshness status from an expiration timestamp and a
// caller-supplied clock value, both in milliseconds since epoch. A nil
// expiresAt means the record has no expiration and is always active.
func Classify(expiresAt *int64, now int64) Result {
	if expiresAt == nil {
		return Result{Status: domain.StatusNone}
	}

	timeLeft := *expiresAt - now
	if timeLeft <= 0 {
		return Result{Status: domain.StatusExpired}
	}

	daysLeft := ceilDays(timeLeft)
	status := domain.StatusFresh
	if timeLeft <= expiringWindow {
		status = domain.StatusExpiring
	}
	return Result{Status: status, DaysLeft: &daysLeft}
}

// CountdownText renders the display text for a classification result.
func CountdownText(r Result) string {
	switch r.Status {
	case domain.StatusNone:
		return "No expiration"
	case domain.StatusExpired:
		return "Expired"
	}

	if r.DaysLeft == nil {
		return ""
	}
	if *r.DaysLeft == 1 {
		return "1 day left"
	}
	return fmt.Sprintf("%d days left", *r.DaysLeft)
}

func ceilDays(millis int64) int {
	return int((millis + dayMillis - 1) / dayMillis)
}
