package domain

// AdvantageMode selects how many d20s an attack rolls and which one is kept
type AdvantageMode string

const (
	AdvantageNormal       AdvantageMode = "normal"
	AdvantageAdvantage    AdvantageMode = "advantage"
	AdvantageDisadvantage AdvantageMode = "disadvantage"
)

// Valid reports whether the mode is one of the known modes
func (m AdvantageMode) Valid() bool {
	switch m {
	case AdvantageNormal, AdvantageAdvantage, AdvantageDisadvantage:
		return true
	}
	return false
}

// OrDefault treats an omitted mode as normal
func (m AdvantageMode) OrDefault() AdvantageMode {
	if m == "" {
		return AdvantageNormal
	}
	return m
}

// RollCount is the number of d20s rolled for this mode
func (m AdvantageMode) RollCount() int {
	if m == AdvantageAdvantage || m == AdvantageDisadvantage {
		return 2
	}
	return 1
}

// Attack die constants
const (
	AttackDieSides = 20
	NaturalCrit    = 20
	NaturalFumble  = 1

	// CriticalDamageMultiplier applies to the fully bonused damage total
	CriticalDamageMultiplier = 2
)

// AttackRequest carries the parameters for a single attack resolution.
// Values are treated as immutable once validated.
type AttackRequest struct {
	SkillTotal     int           `json:"skillTotal"`
	BonusModifiers int           `json:"bonusModifiers"`
	DamageNotation string        `json:"damageNotation"`
	DamageBonus    int           `json:"damageBonus"`
	TargetDefense  int           `json:"targetDefense"`
	AdvantageMode  AdvantageMode `json:"advantageMode"`
}

// DamageNotation is the parsed form of a damage expression such as "2d6+3"
type DamageNotation struct {
	DiceCount int `json:"diceCount"`
	DieSize   int `json:"dieSize"`
	FlatBonus int `json:"flatBonus"`
}

// AttackRollResult is the outcome of rolling the attack d20(s)
type AttackRollResult struct {
	RollsGenerated []int `json:"rollsGenerated"`
	FinalRoll      int   `json:"finalRoll"`
	SkillModifier  int   `json:"skillModifier"`
	BonusModifiers int   `json:"bonusModifiers"`
	Total          int   `json:"total"`
	IsCritical     bool  `json:"isCritical"`
	IsFumble       bool  `json:"isFumble"`
}

// DamageRollResult is the outcome of rolling damage dice
type DamageRollResult struct {
	DiceNotation string `json:"diceNotation"`
	DiceRolls    []int  `json:"diceRolls"`
	DiceTotal    int    `json:"diceTotal"`
	Bonuses      int    `json:"bonuses"`
	Total        int    `json:"total"`
}

// CombatOutcome merges attack and damage against a target defense
type CombatOutcome struct {
	VsDefense   int  `json:"vsDefense"`
	AttackTotal int  `json:"attackTotal"`
	IsHit       bool `json:"isHit"`
	HitMargin   int  `json:"hitMargin"`
	IsCritical  bool `json:"isCritical"`
	DamageDealt int  `json:"damageDealt"`
}

// AttackResult bundles the three stages of one resolved attack
type AttackResult struct {
	AttackRoll AttackRollResult `json:"attackRoll"`
	DamageRoll DamageRollResult `json:"damageRoll"`
	Combat     CombatOutcome    `json:"combat"`
}

// CombinationStats aggregates a combination run
type CombinationStats struct {
	HitCount               int     `json:"hitCount"`
	MissCount              int     `json:"missCount"`
	TotalDamage            int     `json:"totalDamage"`
	AverageDamagePerAttack float64 `json:"averageDamagePerAttack"`
}

// CombinationSummary is the result of running several independent attacks.
// Attacks are kept in roll order.
type CombinationSummary struct {
	AttackCount int              `json:"attackCount"`
	Attacks     []AttackResult   `json:"attacks"`
	Summary     CombinationStats `json:"summary"`
}

// ValidationResult is the outcome of a dry validation of an AttackRequest
type ValidationResult struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}
