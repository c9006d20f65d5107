package util

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"7d", 7 * 24 * time.Hour},
		{"30d", 30 * 24 * time.Hour},
		{"24h", 24 * time.Hour},
		{"30m", 30 * time.Minute},
		{"10s", 10 * time.Second},
		// Pure numbers default to seconds
		// 纯数字默认为秒
		{"90", 90 * time.Second},
		{" 2s ", 2 * time.Second},
	}

	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		if err != nil {
			t.Errorf("ParseDuration(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDuration("xd"); err == nil {
		t.Error("ParseDuration(\"xd\") expected error")
	}
}

func TestGetZeroTime(t *testing.T) {
	d := time.Date(2024, 5, 20, 17, 45, 12, 0, time.Local)
	zero := GetZeroTime(d)
	if zero.Hour() != 0 || zero.Minute() != 0 || zero.Second() != 0 {
		t.Errorf("GetZeroTime() = %v, want midnight", zero)
	}
	if zero.Year() != 2024 || zero.Month() != 5 || zero.Day() != 20 {
		t.Errorf("GetZeroTime() changed the date: %v", zero)
	}
}
