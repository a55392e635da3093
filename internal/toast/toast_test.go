package toast

import (
	"testing"
)

func TestCenter_Recent(t *testing.T) {
	c := NewCenter(0)

	c.Success("saved")
	c.Error("failed")
	c.Info("heads up")
	c.Warning("careful")

	recent := c.Recent()
	if len(recent) != 4 {
		t.Fatalf("Expected 4 toasts, got %d", len(recent))
	}

	wantLevels := []Level{LevelSuccess, LevelError, LevelInfo, LevelWarning}
	wantMessages := []string{"saved", "failed", "heads up", "careful"}
	for i, toast := range recent {
		if toast.Level != wantLevels[i] {
			t.Errorf("toast[%d].Level = %s, want %s", i, toast.Level, wantLevels[i])
		}
		if toast.Message != wantMessages[i] {
			t.Errorf("toast[%d].Message = %s, want %s", i, toast.Message, wantMessages[i])
		}
		if toast.ID == "" {
			t.Errorf("toast[%d].ID is empty", i)
		}
		if toast.CreatedAt.IsZero() {
			t.Errorf("toast[%d].CreatedAt is zero", i)
		}
	}
}

func TestCenter_RetainLimit(t *testing.T) {
	c := NewCenter(3)

	c.Info("one")
	c.Info("two")
	c.Info("three")
	c.Info("four")

	recent := c.Recent()
	if len(recent) != 3 {
		t.Fatalf("Expected 3 retained toasts, got %d", len(recent))
	}
	if recent[0].Message != "two" {
		t.Errorf("Oldest retained = %s, want two", recent[0].Message)
	}
	if recent[2].Message != "four" {
		t.Errorf("Newest retained = %s, want four", recent[2].Message)
	}
}

func TestCenter_Subscribe(t *testing.T) {
	c := NewCenter(0)

	ch, cancel := c.Subscribe()
	defer cancel()

	c.Error("boom")

	got := <-ch
	if got.Level != LevelError || got.Message != "boom" {
		t.Errorf("Received %+v", got)
	}
}

func TestCenter_CancelStopsDelivery(t *testing.T) {
	c := NewCenter(0)

	ch, cancel := c.Subscribe()
	cancel()

	// Channel is closed; pushing must not panic and nothing arrives
	c.Info("after cancel")

	if _, ok := <-ch; ok {
		t.Error("Expected closed channel after cancel")
	}
}

func TestCenter_SlowSubscriberDoesNotBlock(t *testing.T) {
	c := NewCenter(0)

	_, cancel := c.Subscribe()
	defer cancel()

	// Overflow the subscriber buffer; pushes must stay non-blocking
	for i := 0; i < 100; i++ {
		c.Info("flood")
	}

	if len(c.Recent()) != 50 {
		t.Errorf("Expected retain cap of 50, got %d", len(c.Recent()))
	}
}
