package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GrantKind discriminates the grant variants. Each kind has its own delivery queue.
type GrantKind string

const (
	GrantKindLevelUp   GrantKind = "level-up"
	GrantKindSpren     GrantKind = "spren"
	GrantKindExpertise GrantKind = "expertise"
	GrantKindItem      GrantKind = "item"
)

// GrantedEventSuffix is appended to the kind to name the outbound delivery event
const GrantedEventSuffix = "-granted"

// AllGrantKinds lists every grant kind in a stable order
func AllGrantKinds() []GrantKind {
	return []GrantKind{GrantKindLevelUp, GrantKindSpren, GrantKindExpertise, GrantKindItem}
}

// ParseGrantKind converts a path or message value into a GrantKind
func ParseGrantKind(s string) (GrantKind, error) {
	k := GrantKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGrantKind, s)
	}
	return k, nil
}

// Valid reports whether the kind is known
func (k GrantKind) Valid() bool {
	switch k {
	case GrantKindLevelUp, GrantKindSpren, GrantKindExpertise, GrantKindItem:
		return true
	}
	return false
}

// EventName is the name of the event that announces a grant of this kind, e.g. "level-up-granted"
func (k GrantKind) EventName() string {
	return string(k) + GrantedEventSuffix
}

// DisplayName is the human readable kind, e.g. "Level Up"
func (k GrantKind) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(k), "-", " "))
}

// RetainsConfirmation reports whether an acknowledged grant of this kind is kept as a confirmed record
func (k GrantKind) RetainsConfirmation() bool {
	return k == GrantKindLevelUp || k == GrantKindSpren
}

// GrantPayload is the kind-specific body of a grant
type GrantPayload interface {
	Kind() GrantKind
	Validate() error
}

// LevelUpGrant awards a new character level
type LevelUpGrant struct {
	NewLevel int `json:"new_level" validate:"min=1"`
}

func (LevelUpGrant) Kind() GrantKind { return GrantKindLevelUp }

func (g LevelUpGrant) Validate() error {
	if g.NewLevel < 1 {
		return fmt.Errorf("%w: new_level must be at least 1", ErrInvalidGrant)
	}
	return nil
}

// SprenGrant bonds a spren to the character
type SprenGrant struct {
	SprenType string `json:"spren_type" validate:"required,max=64"`
	Name      string `json:"name,omitempty" validate:"max=64"`
}

func (SprenGrant) Kind() GrantKind { return GrantKindSpren }

func (g SprenGrant) Validate() error {
	if strings.TrimSpace(g.SprenType) == "" {
		return fmt.Errorf("%w: spren_type is required", ErrInvalidGrant)
	}
	return nil
}

// ExpertiseGrant awards an expertise
type ExpertiseGrant struct {
	Expertise string `json:"expertise" validate:"required,max=64"`
	Category  string `json:"category,omitempty" validate:"max=32"`
}

func (ExpertiseGrant) Kind() GrantKind { return GrantKindExpertise }

func (g ExpertiseGrant) Validate() error {
	if strings.TrimSpace(g.Expertise) == "" {
		return fmt.Errorf("%w: expertise is required", ErrInvalidGrant)
	}
	return nil
}

// ItemGrant adds items to the character's inventory
type ItemGrant struct {
	ItemID   string `json:"item_id" validate:"required,max=64"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

func (ItemGrant) Kind() GrantKind { return GrantKindItem }

func (g ItemGrant) Validate() error {
	if strings.TrimSpace(g.ItemID) == "" {
		return fmt.Errorf("%w: item_id is required", ErrInvalidGrant)
	}
	if g.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidGrant)
	}
	return nil
}

// NewGrantPayload returns an empty payload for the kind, ready for decoding
func NewGrantPayload(kind GrantKind) (GrantPayload, error) {
	switch kind {
	case GrantKindLevelUp:
		return &LevelUpGrant{}, nil
	case GrantKindSpren:
		return &SprenGrant{}, nil
	case GrantKindExpertise:
		return &ExpertiseGrant{}, nil
	case GrantKindItem:
		return &ItemGrant{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGrantKind, kind)
}

// DecodeGrantPayload decodes raw JSON into the payload type for the kind
func DecodeGrantPayload(kind GrantKind, raw json.RawMessage) (GrantPayload, error) {
	p, err := NewGrantPayload(kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	return derefPayload(p), nil
}

func derefPayload(p GrantPayload) GrantPayload {
	switch v := p.(type) {
	case *LevelUpGrant:
		return *v
	case *SprenGrant:
		return *v
	case *ExpertiseGrant:
		return *v
	case *ItemGrant:
		return *v
	}
	return p
}

// Grant is an award issued by a game master, owned by the delivery queue until acknowledged
type Grant struct {
	ID          string       `json:"id"`
	CharacterID string       `json:"character_id"`
	Kind        GrantKind    `json:"kind"`
	Payload     GrantPayload `json:"payload"`
	IssuedAt    time.Time    `json:"issued_at"`
}

// UnmarshalJSON decodes the payload into the concrete type named by kind
func (g *Grant) UnmarshalJSON(data []byte) error {
	type plain Grant
	var raw struct {
		plain
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*g = Grant(raw.plain)
	if len(raw.Payload) == 0 || string(raw.Payload) == "null" {
		return nil
	}
	payload, err := DecodeGrantPayload(g.Kind, raw.Payload)
	if err != nil {
		return err
	}
	g.Payload = payload
	return nil
}

// ConfirmedGrant is the record retained after a level-up or spren grant is acknowledged
type ConfirmedGrant struct {
	GrantID     string          `json:"grant_id"`
	CharacterID string          `json:"character_id"`
	Kind        GrantKind       `json:"kind"`
	Payload     json.RawMessage `json:"payload"`
	IssuedAt    time.Time       `json:"issued_at"`
	ConfirmedAt time.Time       `json:"confirmed_at"`
}
