package model

import (
	"math"
	"strconv"
	"strings"
)

// ClampMinutes validates a minute count coming from user input.
//
// Non-finite values, values at or below zero and values at or above
// MaxMinutes+1 return fallback. Anything else is floored and clamped to
// [MinMinutes, MaxMinutes], so 0.5 becomes 1 and 180.9 becomes 180.
func ClampMinutes(value float64, fallback int) int {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fallback
	}
	if value <= 0 || value >= MaxMinutes+1 {
		return fallback
	}
	minutes := int(math.Floor(value))
	if minutes < MinMinutes {
		return MinMinutes
	}
	if minutes > MaxMinutes {
		return MaxMinutes
	}
	return minutes
}

// ParseMinutes parses text typed by the user and validates it with ClampMinutes.
func ParseMinutes(text string, fallback int) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fallback
	}
	return ClampMinutes(value, fallback)
}
