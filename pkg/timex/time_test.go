package timex

import (
	"testing"
	"time"
)

func TestTime_UnixMethods(t *testing.T) {
	// Create a fixed time
	// 创建一个固定时间
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tt := Time(now)

	// Test Unix()
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() = %v, want %v", tt.Unix(), now.Unix())
	}

	// Test UnixMilli()
	if tt.UnixMilli() != now.UnixMilli() {
		t.Errorf("UnixMilli() = %v, want %v", tt.UnixMilli(), now.UnixMilli())
	}

	// Test UnixMicro()
	if tt.UnixMicro() != now.UnixMicro() {
		t.Errorf("UnixMicro() = %v, want %v", tt.UnixMicro(), now.UnixMicro())
	}

	// Test UnixNano()
	if tt.UnixNano() != now.UnixNano() {
		t.Errorf("UnixNano() = %v, want %v", tt.UnixNano(), now.UnixNano())
	}

	// Verify it's not returning time.Now() by waiting a bit
	// 通过等待一会确认它不是返回 time.Now()
	time.Sleep(10 * time.Millisecond)
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() changed after sleep, it should be static. got %v, want %v", tt.Unix(), now.Unix())
	}
}

func TestTime_JSONRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 15, 8, 30, 0, 0, time.Local)
	tt := Time(now)

	data, err := tt.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != `"2024-03-15 08:30:00"` {
		t.Errorf("MarshalJSON() = %s, want %q", data, "2024-03-15 08:30:00")
	}

	var parsed Time
	if err := parsed.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if !parsed.Time().Equal(now) {
		t.Errorf("round trip = %v, want %v", parsed.Time(), now)
	}
}

func TestTime_ScanZero(t *testing.T) {
	var tt Time
	if err := tt.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if !tt.IsZero() {
		t.Errorf("Scan(nil) should yield zero time, got %v", tt)
	}
}
