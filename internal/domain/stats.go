package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SkaterStatLine is one skater's boxscore line for a single game.
// TimeOnIce keeps the upstream "mm:ss" form; ParseTimeOnIce converts it
// for aggregation.
type SkaterStatLine struct {
	Goals          int
	Assists        int
	TimeOnIce      string
	Hits           int
	Blocked        int
	PlusMinus      int
	PenaltyMinutes int
	FaceOffWins    int
	FaceoffTaken   int
}

// Points is goals plus assists.
func (s SkaterStatLine) Points() int {
	return s.Goals + s.Assists
}

// AggregateTotals accumulates skater lines across a day's games.
// It is created fresh per query and mutated only through Fold.
type AggregateTotals struct {
	Count        int
	Goals        int
	Assists      int
	Points       int
	TimeOnIce    float64
	Hits         int
	Blocks       int
	PlusMinus    int
	PIM          int
	FaceOffWins  int
	FaceoffTaken int
}

// Fold adds one skater line to the totals. The count increments by one
// per folded line.
func (t *AggregateTotals) Fold(line SkaterStatLine) error {
	toi, err := ParseTimeOnIce(line.TimeOnIce)
	if err != nil {
		return err
	}

	t.Count++
	t.Goals += line.Goals
	t.Assists += line.Assists
	t.Points += line.Points()
	t.TimeOnIce += toi
	t.Hits += line.Hits
	t.Blocks += line.Blocked
	t.PlusMinus += line.PlusMinus
	t.PIM += line.PenaltyMinutes
	t.FaceOffWins += line.FaceOffWins
	t.FaceoffTaken += line.FaceoffTaken
	return nil
}

// ParseTimeOnIce converts a colon-delimited "mm:ss" value to fractional
// minutes (minutes + seconds/60).
func ParseTimeOnIce(value string) (float64, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time on ice %q", value)
	}
	mins, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time on ice %q: %w", value, err)
	}
	secs, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time on ice %q: %w", value, err)
	}
	return float64(mins) + float64(secs)/60, nil
}

// FormatTimeOnIce renders fractional minutes as "m:ss" with zero-padded
// seconds. Rounding to the nearest second keeps parse/format
// inverse-consistent despite float arithmetic.
func FormatTimeOnIce(minutes float64) string {
	totalSeconds := int(math.Round(minutes * 60))
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// FormatPlusMinus renders a plus/minus value with an explicit plus sign
// for non-negative values.
func FormatPlusMinus(value int) string {
	if value >= 0 {
		return fmt.Sprintf("+%d", value)
	}
	return strconv.Itoa(value)
}
