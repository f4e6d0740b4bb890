package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docrouter-ce/docrouter/pkg/models"
	testdb "github.com/docrouter-ce/docrouter/test/database"
)

func invoiceSchemaRequest(name string) SchemaRequest {
	return SchemaRequest{
		Name: name,
		ResponseFormat: models.ResponseFormat{
			Type: "json_schema",
			JSONSchema: &models.JSONSchemaSpec{
				Name: name,
				Schema: json.RawMessage(`{
					"type": "object",
					"properties": {
						"invoice_number": {"type": "string"},
						"total": {"type": "number"}
					},
					"required": ["invoice_number", "total"],
					"additionalProperties": false
				}`),
				Strict: true,
			},
		},
	}
}

func TestSchemaService_CreateStartsAtVersionOne(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSchemaService(client.Client)
	ctx := context.Background()

	rev, err := svc.Create(ctx, "org1", "user1", invoiceSchemaRequest("invoice"))
	require.NoError(t, err)
	assert.Equal(t, 1, rev.SchemaVersion)
	assert.NotEmpty(t, rev.SchemaID)
	assert.NotEqual(t, rev.SchemaID, rev.ID)
}

func TestSchemaService_CreateValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSchemaService(client.Client)
	ctx := context.Background()

	t.Run("missing name", func(t *testing.T) {
		req := invoiceSchemaRequest("")
		_, err := svc.Create(ctx, "org1", "user1", req)
		assert.True(t, IsValidation(err))
	})

	t.Run("wrong response format type", func(t *testing.T) {
		req := invoiceSchemaRequest("x")
		req.ResponseFormat.Type = "json_object"
		_, err := svc.Create(ctx, "org1", "user1", req)
		assert.True(t, IsValidation(err))
	})

	t.Run("non-object schema root", func(t *testing.T) {
		req := invoiceSchemaRequest("x")
		req.ResponseFormat.JSONSchema.Schema = json.RawMessage(`{"type": "array"}`)
		_, err := svc.Create(ctx, "org1", "user1", req)
		assert.True(t, IsValidation(err))
	})

	t.Run("missing required keys", func(t *testing.T) {
		req := invoiceSchemaRequest("x")
		req.ResponseFormat.JSONSchema.Schema = json.RawMessage(`{"type": "object", "properties": {}}`)
		_, err := svc.Create(ctx, "org1", "user1", req)
		assert.True(t, IsValidation(err))
	})
}

func TestSchemaService_UpdateAppendsContiguousVersions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSchemaService(client.Client)
	ctx := context.Background()

	v1, err := svc.Create(ctx, "org1", "user1", invoiceSchemaRequest("invoice"))
	require.NoError(t, err)

	v2, err := svc.Update(ctx, "org1", v1.SchemaID, "user1", invoiceSchemaRequest("invoice"))
	require.NoError(t, err)
	assert.Equal(t, 2, v2.SchemaVersion)
	assert.Equal(t, v1.SchemaID, v2.SchemaID)
	assert.NotEqual(t, v1.ID, v2.ID)

	v3, err := svc.Update(ctx, "org1", v1.SchemaID, "user1", invoiceSchemaRequest("invoice"))
	require.NoError(t, err)
	assert.Equal(t, 3, v3.SchemaVersion)

	// Earlier revisions remain readable.
	got, err := svc.GetVersion(ctx, "org1", v1.SchemaID, 1)
	require.NoError(t, err)
	assert.Equal(t, v1.ID, got.ID)

	latest, err := svc.Latest(ctx, "org1", v1.SchemaID)
	require.NoError(t, err)
	assert.Equal(t, 3, latest.SchemaVersion)
}

func TestSchemaService_ListReturnsLatestPerSchema(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSchemaService(client.Client)
	ctx := context.Background()

	a1, err := svc.Create(ctx, "org1", "user1", invoiceSchemaRequest("a"))
	require.NoError(t, err)
	_, err = svc.Update(ctx, "org1", a1.SchemaID, "user1", invoiceSchemaRequest("a"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "org1", "user1", invoiceSchemaRequest("b"))
	require.NoError(t, err)

	revs, err := svc.List(ctx, "org1")
	require.NoError(t, err)
	require.Len(t, revs, 2)
	for _, rev := range revs {
		if rev.SchemaID == a1.SchemaID {
			assert.Equal(t, 2, rev.SchemaVersion)
		}
	}
}

func TestSchemaService_DeleteRemovesAllRevisions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSchemaService(client.Client)
	ctx := context.Background()

	v1, err := svc.Create(ctx, "org1", "user1", invoiceSchemaRequest("gone"))
	require.NoError(t, err)
	_, err = svc.Update(ctx, "org1", v1.SchemaID, "user1", invoiceSchemaRequest("gone"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "org1", v1.SchemaID))
	_, err = svc.Latest(ctx, "org1", v1.SchemaID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "org1", v1.SchemaID), ErrNotFound)
}

func TestSchemaService_ResolveNameVersion(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSchemaService(client.Client)
	ctx := context.Background()

	v1, err := svc.Create(ctx, "org1", "user1", invoiceSchemaRequest("named"))
	require.NoError(t, err)

	revID, err := svc.ResolveNameVersion(ctx, "org1", "named", 1)
	require.NoError(t, err)
	assert.Equal(t, v1.ID, revID)

	_, err = svc.ResolveNameVersion(ctx, "org1", "named", 9)
	assert.ErrorIs(t, err, ErrNotFound)
}
