package settings

import (
	"errors"
	"testing"
)

func TestValidateWeights(t *testing.T) {
	profile := RoleWeightProfile{InputWeight: 0.3, OutputWeight: 0.4, OutcomeWeight: 0.2, ImpactWeight: 0.1}
	if err := ValidateWeights(profile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Within tolerance.
	profile.ImpactWeight = 0.1005
	if err := ValidateWeights(profile); err != nil {
		t.Fatalf("expected tolerance to absorb rounding, got %v", err)
	}

	profile.ImpactWeight = 0.2
	if err := ValidateWeights(profile); !errors.Is(err, ErrWeightSum) {
		t.Fatalf("expected weight sum error, got %v", err)
	}
}

func TestValidateTarget(t *testing.T) {
	target := PerformanceTarget{
		OutstandingThreshold:     300,
		StrongThreshold:          230,
		MeetingThreshold:         170,
		PartialThreshold:         140,
		UnderperformingThreshold: 120,
		TimePeriodWeeks:          4,
	}
	if err := ValidateTarget(target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	target.StrongThreshold = 300
	if err := ValidateTarget(target); !errors.Is(err, ErrThresholdOrder) {
		t.Fatalf("expected threshold order error, got %v", err)
	}

	target.StrongThreshold = 230
	target.TimePeriodWeeks = 0
	if err := ValidateTarget(target); !errors.Is(err, ErrTimePeriod) {
		t.Fatalf("expected time period error, got %v", err)
	}
}

func TestValidateRoleLevel(t *testing.T) {
	if err := ValidateRoleLevel(RoleIC, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateRoleLevel(RoleManager, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateRoleLevel(RoleManager, 3); !errors.Is(err, ErrLevelOutOfRange) {
		t.Fatalf("expected level error, got %v", err)
	}
	if err := ValidateRoleLevel(RoleIC, 9); !errors.Is(err, ErrLevelOutOfRange) {
		t.Fatalf("expected level error, got %v", err)
	}
	if err := ValidateRoleLevel("Director", 5); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected role error, got %v", err)
	}
}
