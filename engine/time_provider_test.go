package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}

	got := mock.Advance(16 * time.Millisecond)
	if want := start.Add(16 * time.Millisecond); !got.Equal(want) || !mock.Now().Equal(want) {
		t.Errorf("Expected %v after Advance, got %v", want, got)
	}

	later := start.Add(time.Hour)
	mock.SetTime(later)
	if now := mock.Now(); !now.Equal(later) {
		t.Errorf("Expected %v after SetTime, got %v", later, now)
	}
}
