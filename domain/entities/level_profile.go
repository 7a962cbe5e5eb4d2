package entities

import (
	"math"
	"time"
)

// LevelProfile tracks a user's accumulated XP. XP only ever increases; the
// level is always recomputed from XP so the two can never drift apart.
type LevelProfile struct {
	UserID      string
	DisplayName string
	XP          int64
	Level       int
	LastXPAt    *time.Time
}

// LevelForXP evaluates the level curve: floor(sqrt(xp / multiplier)).
func LevelForXP(xp int64, multiplier int) int {
	if xp <= 0 || multiplier <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(xp) / float64(multiplier)))
}

// XPForLevel returns the total XP required to reach a level: level² × multiplier.
func XPForLevel(level, multiplier int) int64 {
	if level <= 0 {
		return 0
	}
	return int64(level) * int64(level) * int64(multiplier)
}

// LevelProgress describes a profile's position within its current level band.
type LevelProgress struct {
	Level       int
	XP          int64
	XPIntoLevel int64
	XPToNext    int64
	Percent     int
}

// Progress computes the profile's progress toward the next level.
func (p *LevelProfile) Progress(multiplier int) LevelProgress {
	level := LevelForXP(p.XP, multiplier)
	currentFloor := XPForLevel(level, multiplier)
	nextFloor := XPForLevel(level+1, multiplier)

	bandSize := nextFloor - currentFloor
	into := p.XP - currentFloor

	percent := 0
	if bandSize > 0 {
		percent = int(into * 100 / bandSize)
	}

	return LevelProgress{
		Level:       level,
		XP:          p.XP,
		XPIntoLevel: into,
		XPToNext:    nextFloor - p.XP,
		Percent:     percent,
	}
}
