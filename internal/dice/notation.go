package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/osse101/StormSheet_Go/internal/domain"
)

// [count]d<size>[(+|-)bonus]
var notationPattern = regexp.MustCompile(`^(\d*)[dD](\d+)(?:([+-])(\d+))?$`)

var signSpacing = regexp.MustCompile(`\s*([+-])\s*`)

// Parse parses damage notation such as "d6", "2d6+3" or "d20-1".
// Surrounding whitespace and spaces around the sign are ignored.
// Failures wrap domain.ErrInvalidNotation.
func Parse(text string) (domain.DamageNotation, error) {
	compact := signSpacing.ReplaceAllString(strings.TrimSpace(text), "$1")
	m := notationPattern.FindStringSubmatch(compact)
	if m == nil {
		return domain.DamageNotation{}, fmt.Errorf("%w: %q", domain.ErrInvalidNotation, text)
	}

	count := 1
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < MinDiceCount || n > MaxDiceCount {
			return domain.DamageNotation{}, fmt.Errorf("%w: dice count must be between %d and %d", domain.ErrInvalidNotation, MinDiceCount, MaxDiceCount)
		}
		count = n
	}

	size, err := strconv.Atoi(m[2])
	if err != nil || size < MinDieSize || size > MaxDieSize {
		return domain.DamageNotation{}, fmt.Errorf("%w: die size must be between %d and %d", domain.ErrInvalidNotation, MinDieSize, MaxDieSize)
	}

	bonus := 0
	if m[3] != "" {
		b, err := strconv.Atoi(m[4])
		if err != nil || b > MaxFlatBonus {
			return domain.DamageNotation{}, fmt.Errorf("%w: bonus must be at most %d", domain.ErrInvalidNotation, MaxFlatBonus)
		}
		if m[3] == "-" {
			b = -b
		}
		bonus = b
	}

	return domain.DamageNotation{DiceCount: count, DieSize: size, FlatBonus: bonus}, nil
}

// Format renders the canonical form: the count is always written and a zero bonus is omitted
func Format(n domain.DamageNotation) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(n.DiceCount))
	sb.WriteByte('d')
	sb.WriteString(strconv.Itoa(n.DieSize))
	switch {
	case n.FlatBonus > 0:
		sb.WriteByte('+')
		sb.WriteString(strconv.Itoa(n.FlatBonus))
	case n.FlatBonus < 0:
		sb.WriteString(strconv.Itoa(n.FlatBonus))
	}
	return sb.String()
}

// RollAll rolls count dice of the given size in order
func RollAll(r Roller, count, sides int) []int {
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = r.Roll(sides)
	}
	return rolls
}
