package domain

// CharacterStats is the read-only view of a character sheet that the attack engine consumes
type CharacterStats struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Level      int            `json:"level"`
	Attributes map[string]int `json:"attributes"`
	Skills     map[string]int `json:"skills"`
}

// SkillTotal returns the stored total for a skill
func (c *CharacterStats) SkillTotal(skill string) (int, bool) {
	if c == nil || c.Skills == nil {
		return 0, false
	}
	v, ok := c.Skills[skill]
	return v, ok
}
