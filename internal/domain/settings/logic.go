package settings

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrWeightSum       = errors.New("dimension weights must sum to 1.0")
	ErrWeightRange     = errors.New("dimension weights must be between 0 and 1")
	ErrThresholdOrder  = errors.New("band thresholds must be strictly descending")
	ErrTimePeriod      = errors.New("time period must be a positive number of weeks")
	ErrUnknownRole     = errors.New("role must be IC or Manager")
	ErrLevelOutOfRange = errors.New("level out of range for role")
)

// ValidateWeights checks that the four weights are fractions summing to 1.0
// within tolerance.
func ValidateWeights(profile RoleWeightProfile) error {
	weights := []float64{profile.InputWeight, profile.OutputWeight, profile.OutcomeWeight, profile.ImpactWeight}
	sum := 0.0
	for _, weight := range weights {
		if weight < 0 || weight > 1 {
			return fmt.Errorf("%w: got %v", ErrWeightRange, weight)
		}
		sum += weight
	}
	if math.Abs(sum-1.0) > WeightSumTolerance {
		return fmt.Errorf("%w: got %v", ErrWeightSum, sum)
	}
	return nil
}

// ValidateTarget checks threshold ordering and the evaluation window length.
func ValidateTarget(target PerformanceTarget) error {
	thresholds := []int{
		target.OutstandingThreshold,
		target.StrongThreshold,
		target.MeetingThreshold,
		target.PartialThreshold,
		target.UnderperformingThreshold,
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] >= thresholds[i-1] {
			return ErrThresholdOrder
		}
	}
	if target.TimePeriodWeeks < 1 {
		return ErrTimePeriod
	}
	return nil
}

// ValidateRoleLevel checks the (role, level) bounds: IC 1-8, Manager 4-8.
func ValidateRoleLevel(role string, level int) error {
	switch role {
	case RoleIC:
		if level < ICMinLevel || level > ICMaxLevel {
			return fmt.Errorf("%w: IC level %d", ErrLevelOutOfRange, level)
		}
	case RoleManager:
		if level < ManagerMinLevel || level > ManagerMaxLevel {
			return fmt.Errorf("%w: Manager level %d", ErrLevelOutOfRange, level)
		}
	default:
		return ErrUnknownRole
	}
	return nil
}

// MaxLevel returns the top level for a role, for capping next-level analysis.
func MaxLevel(role string) int {
	if role == RoleManager {
		return ManagerMaxLevel
	}
	return ICMaxLevel
}
