package expiration

import (
	"testing"

	"Scanstock-Backend/domain"
)

const day = int64(24 * 60 * 60 * 1000)

func ptr(v int64) *int64 { return &v }

func TestClassify(t *testing.T) {
	now := int64(1_700_000_000_000)

	tests := []struct {
		name       string
		expiresAt  *int64
		wantStatus string
		wantDays   int // -1 means nil expected
	}{
		{"no expiration", nil, domain.StatusNone, -1},
		{"expired exactly now", ptr(now), domain.StatusExpired, -1},
		{"expired in the past", ptr(now - 3*day), domain.StatusExpired, -1},
		{"expiring in one second", ptr(now + 1000), domain.StatusExpiring, 1},
		{"expiring in one day", ptr(now + day), domain.StatusExpiring, 1},
		{"expiring at seven day boundary", ptr(now + 7*day), domain.StatusExpiring, 7},
		{"fresh just over seven days", ptr(now + 7*day + 1), domain.StatusFresh, 8},
		{"fresh in thirty days", ptr(now + 30*day), domain.StatusFresh, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.expiresAt, now)
			if got.Status != tt.wantStatus {
				t.Errorf("Classify() status = %q, want %q", got.Status, tt.wantStatus)
			}
			if tt.wantDays == -1 {
				if got.DaysLeft != nil {
					t.Errorf("Classify() daysLeft = %d, want nil", *got.DaysLeft)
				}
			} else {
				if got.DaysLeft == nil {
					t.Fatalf("Classify() daysLeft = nil, want %d", tt.wantDays)
				}
				if *got.DaysLeft != tt.wantDays {
					t.Errorf("Classify() daysLeft = %d, want %d", *got.DaysLeft, tt.wantDays)
				}
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	now := int64(1_700_000_000_000)
	exp := ptr(now + 3*day)

	first := Classify(exp, now)
	second := Classify(exp, now)
	if first.Status != second.Status || *first.DaysLeft != *second.DaysLeft {
		t.Error("Classify() is not deterministic for identical inputs")
	}
}

func TestCountdownText(t *testing.T) {
	now := int64(1_700_000_000_000)

	tests := []struct {
		name      string
		expiresAt *int64
		want      string
	}{
		{"expired", ptr(now - 1), "Expired"},
		{"one day plus one second singular", ptr(now + day + 1000), "2 days left"},
		{"exactly one day", ptr(now + day), "1 day left"},
		{"just under one day", ptr(now + day - 1000), "1 day left"},
		{"two days", ptr(now + 2*day), "2 days left"},
		{"no expiration", nil, "No expiration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountdownText(Classify(tt.expiresAt, now))
			if got != tt.want {
				t.Errorf("CountdownText() = %q, want %q", got, tt.want)
			}
		})
	}
}
