package engine

import (
	"testing"
	"time"
)

func TestFrameClockSamplesElapsedTime(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock)

	mock.Advance(16 * time.Millisecond)
	dt := clock.Tick()
	if dt != 0.016 {
		t.Errorf("Expected dt 0.016, got %v", dt)
	}

	// A slow frame reports its true duration
	mock.Advance(250 * time.Millisecond)
	dt = clock.Tick()
	if dt != 0.25 {
		t.Errorf("Expected dt 0.25, got %v", dt)
	}
}

func TestFrameClockZeroElapsed(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock)
	if dt := clock.Tick(); dt != 0 {
		t.Errorf("Expected zero dt without time advancing, got %v", dt)
	}
}

func TestMockTimeProviderAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	mock.Advance(3 * time.Second)
	if got := mock.Now(); !got.Equal(start.Add(3 * time.Second)) {
		t.Errorf("Expected %v, got %v", start.Add(3*time.Second), got)
	}

	later := start.Add(time.Hour)
	mock.SetTime(later)
	if got := mock.Now(); !got.Equal(later) {
		t.Errorf("Expected %v, got %v", later, got)
	}
}
