package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Trimester identifies one of the three pregnancy phases. The zero value,
// NoTrimester, means "nothing selected".
type Trimester int

const (
	NoTrimester     Trimester = 0
	TrimesterFirst  Trimester = 1
	TrimesterSecond Trimester = 2
	TrimesterThird  Trimester = 3
)

// AllTrimesters lists the valid trimesters in display order.
var AllTrimesters = []Trimester{TrimesterFirst, TrimesterSecond, TrimesterThird}

func (t Trimester) Valid() bool {
	return t >= TrimesterFirst && t <= TrimesterThird
}

func (t Trimester) String() string {
	if !t.Valid() {
		return "none"
	}
	return "Trimester " + strconv.Itoa(int(t))
}

// ParseTrimester accepts "1".."3", optionally prefixed with "t" or "trimester".
func ParseTrimester(s string) (Trimester, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "trimester")
	v = strings.TrimPrefix(v, "t")
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || !Trimester(n).Valid() {
		return NoTrimester, fmt.Errorf("%w: %q", ErrUnknownTrimester, s)
	}
	return Trimester(n), nil
}

// RiskLevel is the traffic-light tier used by ASHA workers.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ValidRiskLevels is the canonical set of accepted risk level strings.
var ValidRiskLevels = map[string]bool{
	"low": true, "medium": true, "high": true,
}

// ParseRiskLevel accepts the level names plus their card colors
// (green, yellow, red).
func ParseRiskLevel(s string) (RiskLevel, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "green":
		return RiskLow, nil
	case "yellow":
		return RiskMedium, nil
	case "red":
		return RiskHigh, nil
	}
	if !ValidRiskLevels[v] {
		return "", fmt.Errorf("%w: %q", ErrUnknownRiskLevel, s)
	}
	return RiskLevel(v), nil
}
