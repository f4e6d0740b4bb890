package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	legal := [][2]DocumentState{
		{StateUploaded, StateOCRProcessing},
		{StateUploaded, StateOCRCompleted}, // formats that skip OCR
		{StateOCRProcessing, StateOCRCompleted},
		{StateOCRProcessing, StateOCRFailed},
		{StateOCRCompleted, StateLLMProcessing},
		{StateOCRFailed, StateOCRProcessing},
		{StateLLMProcessing, StateLLMCompleted},
		{StateLLMProcessing, StateLLMFailed},
		{StateLLMCompleted, StateLLMProcessing}, // force re-run
		{StateLLMFailed, StateLLMProcessing},
	}
	for _, edge := range legal {
		assert.True(t, CanTransition(edge[0], edge[1]), "%s -> %s", edge[0], edge[1])
	}

	illegal := [][2]DocumentState{
		{StateUploaded, StateLLMProcessing},
		{StateOCRCompleted, StateUploaded},
		{StateLLMCompleted, StateOCRProcessing},
		{StateOCRProcessing, StateLLMCompleted},
	}
	for _, edge := range illegal {
		assert.False(t, CanTransition(edge[0], edge[1]), "%s -> %s", edge[0], edge[1])
	}
}

func TestCanUpgradeOrgType(t *testing.T) {
	assert.True(t, CanUpgradeOrgType(OrgTypeIndividual, OrgTypeTeam))
	assert.True(t, CanUpgradeOrgType(OrgTypeIndividual, OrgTypeEnterprise))
	assert.True(t, CanUpgradeOrgType(OrgTypeTeam, OrgTypeEnterprise))

	assert.False(t, CanUpgradeOrgType(OrgTypeTeam, OrgTypeIndividual))
	assert.False(t, CanUpgradeOrgType(OrgTypeEnterprise, OrgTypeTeam))
	assert.False(t, CanUpgradeOrgType(OrgTypeEnterprise, OrgTypeIndividual))
}

func TestMemberRole(t *testing.T) {
	members := []OrganizationMember{
		{UserID: "u1", Role: OrgRoleAdmin},
		{UserID: "u2", Role: OrgRoleUser},
	}
	assert.Equal(t, OrgRoleAdmin, MemberRole(members, "u1"))
	assert.Equal(t, OrgRoleUser, MemberRole(members, "u2"))
	assert.Empty(t, MemberRole(members, "u3"))

	assert.True(t, HasAdmin(members))
	assert.False(t, HasAdmin(members[1:]))
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Regexp(t, `^[0-9a-f]{24}$`, a)
	assert.NotEqual(t, a, b)
}

func TestValidateSchemaRoot(t *testing.T) {
	good := json.RawMessage(`{
		"type": "object",
		"properties": {"a": {"type": "string"}},
		"required": ["a"],
		"additionalProperties": false
	}`)
	require.NoError(t, ValidateSchemaRoot(good))

	assert.Error(t, ValidateSchemaRoot(json.RawMessage(`[]`)))
	assert.Error(t, ValidateSchemaRoot(json.RawMessage(`{"type": "array"}`)))
	assert.Error(t, ValidateSchemaRoot(json.RawMessage(`{"type": "object", "properties": {}}`)))
}

func TestSchemaPropertyOrder(t *testing.T) {
	schema := json.RawMessage(`{
		"type": "object",
		"properties": {"z": {}, "a": {}, "m": {}},
		"required": [],
		"additionalProperties": false
	}`)
	order, err := SchemaPropertyOrder(schema)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, order)
}
