// Package experience converts between cumulative experience points and
// levels using the enchanting level curve: linear below level 16, then two
// quadratic segments. The curve is continuous at both segment boundaries
// and costs are truncated toward zero.
package experience

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeLevel = errors.New("level must not be negative")
	ErrNegativeXP    = errors.New("experience must not be negative")
)

// XPForLevel returns the cumulative experience required to go from level 0
// to the given level.
func XPForLevel(level int) (int, error) {
	if level < 0 {
		return 0, ErrNegativeLevel
	}

	switch {
	case level < 16:
		return 17 * level, nil
	case level <= 30:
		l := float64(level)
		return int(1.5*l*l - 29.5*l + 360), nil
	default:
		l := float64(level)
		return int(3.5*l*l - 151.5*l + 2220), nil
	}
}

// XPBetweenLevels returns the experience needed to go from start to end.
// The result is negative when end is below start.
func XPBetweenLevels(start int, end int) (int, error) {
	startXP, err := XPForLevel(start)
	if err != nil {
		return 0, err
	}

	endXP, err := XPForLevel(end)
	if err != nil {
		return 0, err
	}

	return endXP - startXP, nil
}

// LevelForXP returns the greatest level whose cumulative cost does not
// exceed totalXP. The curve has no closed-form inverse so this walks the
// levels one at a time, which is fine at game scales.
func LevelForXP(totalXP int) (int, error) {
	if totalXP < 0 {
		return 0, ErrNegativeXP
	}

	level := 0
	remaining := totalXP

	for {
		step, err := XPBetweenLevels(level, level+1)
		if err != nil {
			return 0, err
		}

		if remaining < step {
			return level, nil
		}

		remaining -= step
		level++
	}
}

// Progress reports how far totalXP sits into its level: the experience
// earned past the current level boundary and the full cost of the next
// level step.
func Progress(totalXP int) (into int, step int, err error) {
	level, err := LevelForXP(totalXP)
	if err != nil {
		return 0, 0, err
	}

	levelXP, err := XPForLevel(level)
	if err != nil {
		return 0, 0, err
	}

	step, err = XPBetweenLevels(level, level+1)
	if err != nil {
		return 0, 0, err
	}

	return totalXP - levelXP, step, nil
}

// DisplayString formats an experience amount for display: whole levels when
// the amount reaches at least one level, raw experience otherwise.
func DisplayString(totalXP int) (string, error) {
	level, err := LevelForXP(totalXP)
	if err != nil {
		return "", err
	}

	if level > 0 {
		return fmt.Sprintf("%dL", level), nil
	}

	return fmt.Sprintf("%dxp", totalXP), nil
}
