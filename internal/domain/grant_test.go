package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrantKind(t *testing.T) {
	for _, k := range AllGrantKinds() {
		got, err := ParseGrantKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseGrantKind(" Level-Up ")
	require.NoError(t, err)
	assert.Equal(t, GrantKindLevelUp, got)

	_, err = ParseGrantKind("promotion")
	assert.ErrorIs(t, err, ErrUnknownGrantKind)
}

func TestGrantKind_EventName(t *testing.T) {
	assert.Equal(t, "level-up-granted", GrantKindLevelUp.EventName())
	assert.Equal(t, "spren-granted", GrantKindSpren.EventName())
	assert.Equal(t, "expertise-granted", GrantKindExpertise.EventName())
	assert.Equal(t, "item-granted", GrantKindItem.EventName())
}

func TestGrantKind_RetainsConfirmation(t *testing.T) {
	assert.True(t, GrantKindLevelUp.RetainsConfirmation())
	assert.True(t, GrantKindSpren.RetainsConfirmation())
	assert.False(t, GrantKindExpertise.RetainsConfirmation())
	assert.False(t, GrantKindItem.RetainsConfirmation())
}

func TestDecodeGrantPayload(t *testing.T) {
	p, err := DecodeGrantPayload(GrantKindItem, json.RawMessage(`{"item_id":"sphere","quantity":5}`))
	require.NoError(t, err)
	assert.Equal(t, ItemGrant{ItemID: "sphere", Quantity: 5}, p)
	assert.Equal(t, GrantKindItem, p.Kind())

	p, err = DecodeGrantPayload(GrantKindLevelUp, json.RawMessage(`{"new_level":3}`))
	require.NoError(t, err)
	assert.Equal(t, LevelUpGrant{NewLevel: 3}, p)

	_, err = DecodeGrantPayload(GrantKindSpren, json.RawMessage(`{"spren_type":`))
	assert.ErrorIs(t, err, ErrMalformedRequest)

	_, err = DecodeGrantPayload("bogus", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnknownGrantKind)
}

func TestGrant_JSONShape(t *testing.T) {
	g := Grant{ID: "g1", CharacterID: "kal", Kind: GrantKindSpren, Payload: SprenGrant{SprenType: "honorspren"}}

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "spren", decoded["kind"])
	assert.Equal(t, "honorspren", decoded["payload"].(map[string]any)["spren_type"])
}

func TestAdvantageMode(t *testing.T) {
	assert.Equal(t, AdvantageNormal, AdvantageMode("").OrDefault())
	assert.Equal(t, 1, AdvantageNormal.RollCount())
	assert.Equal(t, 2, AdvantageAdvantage.RollCount())
	assert.Equal(t, 2, AdvantageDisadvantage.RollCount())
	assert.False(t, AdvantageMode("lucky").Valid())
}

func TestCharacterStats_SkillTotal(t *testing.T) {
	var nilStats *CharacterStats
	_, ok := nilStats.SkillTotal("athletics")
	assert.False(t, ok)

	c := &CharacterStats{Skills: map[string]int{"athletics": 3}}
	v, ok := c.SkillTotal("athletics")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestGrant_UnmarshalRestoresPayloadType(t *testing.T) {
	data := []byte(`{"id":"g1","character_id":"c1","kind":"item","payload":{"item_id":"broam","quantity":3},"issued_at":"2026-01-02T03:04:05Z"}`)

	var g Grant
	require.NoError(t, json.Unmarshal(data, &g))
	assert.Equal(t, "g1", g.ID)
	assert.Equal(t, GrantKindItem, g.Kind)
	assert.Equal(t, ItemGrant{ItemID: "broam", Quantity: 3}, g.Payload)

	var unknown Grant
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"kind":"oathgate","payload":{}}`), &unknown), ErrUnknownGrantKind)
}

func TestGrantKind_DisplayName(t *testing.T) {
	assert.Equal(t, "Level Up", GrantKindLevelUp.DisplayName())
	assert.Equal(t, "Spren", GrantKindSpren.DisplayName())
}
