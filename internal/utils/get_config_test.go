package utils

import (
	"sync"
	"testing"
)

func setConfig(t *testing.T, c Config) {
	t.Helper()
	configMu.Lock()
	orig := config
	config = c
	configMu.Unlock()
	t.Cleanup(func() {
		configMu.Lock()
		config = orig
		configMu.Unlock()
	})
}

func TestLooksConfigured(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		minLen int
		want   bool
	}{
		{"empty", "", 3, false},
		{"too short", "db", 3, false},
		{"template marker", "YOUR_DB_HOST", 3, false},
		{"example marker", "db.example.invalid", 3, false},
		{"placeholder marker", "placeholder-host", 3, false},
		{"changeme marker", "changeme", 3, false},
		{"real looking host", "10.0.4.12", 3, true},
		{"real looking name", "scanstock", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksConfigured(tt.value, tt.minLen); got != tt.want {
				t.Errorf("looksConfigured(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestIsRemoteConfigured(t *testing.T) {
	setConfig(t, Config{DBHost: "localhost", DBName: "scanstock", DBUser: "app"})
	if !IsRemoteConfigured() {
		t.Error("IsRemoteConfigured() = false for valid settings")
	}

	setConfig(t, Config{DBHost: "YOUR_DB_HOST", DBName: "scanstock", DBUser: "app"})
	if IsRemoteConfigured() {
		t.Error("IsRemoteConfigured() = true for placeholder host")
	}

	setConfig(t, Config{DBHost: "localhost", DBName: "scanstock", DBUser: "app"})
	ResetRemoteConfig()
	if IsRemoteConfigured() {
		t.Error("IsRemoteConfigured() = true after ResetRemoteConfig()")
	}
}

// Resets happen on request-handling goroutines while other requests read the
// config, so reads and the reset must be safe to interleave (run with -race).
func TestResetRemoteConfigConcurrent(t *testing.T) {
	setConfig(t, Config{DBHost: "localhost", DBName: "scanstock", DBUser: "app", RequireRemote: true})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				IsRemoteConfigured()
				RequireRemote()
				GetConfig("DB_HOST")
			}
		}()
	}

	for j := 0; j < 1000; j++ {
		ResetRemoteConfig()
	}
	wg.Wait()

	if IsRemoteConfigured() {
		t.Error("IsRemoteConfigured() = true after ResetRemoteConfig()")
	}
}
