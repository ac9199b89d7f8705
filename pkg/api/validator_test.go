package api

import (
	"math"
	"strings"
	"testing"
)

func TestNavigateRejectsNonFiniteCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		payload NavigatePayload
		valid   bool
	}{
		{"ordinary point", NavigatePayload{X: 1, Y: 0, Z: -3}, true},
		{"NaN", NavigatePayload{X: math.NaN()}, false},
		{"infinity", NavigatePayload{Z: math.Inf(1)}, false},
		{"negative stop", NavigatePayload{Stop: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestChatValidation(t *testing.T) {
	if err := (ChatPayload{Channel: "LOCAL", Text: "привет"}).Validate(); err != nil {
		t.Errorf("Expected local message valid, got %v", err)
	}
	if err := (ChatPayload{Channel: "WHISPER", Text: "псс"}).Validate(); err == nil {
		t.Error("Expected whisper without recipient rejected")
	}
	long := strings.Repeat("а", maxChatLength+1)
	if err := (ChatPayload{Channel: "GLOBAL", Text: long}).Validate(); err == nil {
		t.Error("Expected over-long message rejected")
	}
	if err := (ChatPayload{Channel: "SHOUT", Text: "эй"}).Validate(); err == nil {
		t.Error("Expected unknown channel rejected")
	}
}

func TestSlotPayloads(t *testing.T) {
	if err := (TwoSlotsPayload{From: 2, To: 2}).Validate(); err == nil {
		t.Error("Expected equal slots rejected")
	}
	if err := (SlotPayload{Slot: -1}).Validate(); err == nil {
		t.Error("Expected negative slot rejected")
	}
	if err := (LootPayload{MonsterID: "m1", Index: -1}).Validate(); err != nil {
		t.Errorf("Expected index -1 (gold) valid, got %v", err)
	}
	if err := (LootPayload{MonsterID: "m1", Index: -2}).Validate(); err == nil {
		t.Error("Expected index below -1 rejected")
	}
}
