package services

import (
	"context"
	"fmt"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/schemarevision"
	"github.com/docrouter-ce/docrouter/pkg/models"
)

// SchemaService implements the two-tier versioned schema store: a stable
// schema_id with immutable revision rows whose schema_version grows
// contiguously from 1.
type SchemaService struct {
	client *ent.Client
}

// NewSchemaService creates a SchemaService.
func NewSchemaService(client *ent.Client) *SchemaService {
	return &SchemaService{client: client}
}

// SchemaRequest carries schema create/update fields.
type SchemaRequest struct {
	Name           string                `json:"name"`
	ResponseFormat models.ResponseFormat `json:"response_format"`
}

func validateSchemaRequest(req SchemaRequest) error {
	if req.Name == "" {
		return Validationf("schema name is required")
	}
	if req.ResponseFormat.Type != "json_schema" || req.ResponseFormat.JSONSchema == nil {
		return Validationf("response_format must be of type json_schema")
	}
	if err := models.ValidateSchemaRoot(req.ResponseFormat.JSONSchema.Schema); err != nil {
		return Validationf("%v", err)
	}
	return nil
}

// Create inserts version 1 of a new schema.
func (s *SchemaService) Create(ctx context.Context, orgID, userID string, req SchemaRequest) (*ent.SchemaRevision, error) {
	if err := validateSchemaRequest(req); err != nil {
		return nil, err
	}
	rev, err := s.client.SchemaRevision.Create().
		SetSchemaID(models.NewID()).
		SetSchemaVersion(1).
		SetName(req.Name).
		SetResponseFormat(req.ResponseFormat).
		SetOrganizationID(orgID).
		SetCreatedBy(userID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return rev, nil
}

// Update appends a new revision with version = max(existing)+1.
func (s *SchemaService) Update(ctx context.Context, orgID, schemaID, userID string, req SchemaRequest) (*ent.SchemaRevision, error) {
	if err := validateSchemaRequest(req); err != nil {
		return nil, err
	}
	latest, err := s.Latest(ctx, orgID, schemaID)
	if err != nil {
		return nil, err
	}
	rev, err := s.client.SchemaRevision.Create().
		SetSchemaID(schemaID).
		SetSchemaVersion(latest.SchemaVersion + 1).
		SetName(req.Name).
		SetResponseFormat(req.ResponseFormat).
		SetOrganizationID(orgID).
		SetCreatedBy(userID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating schema revision: %w", err)
	}
	return rev, nil
}

// Latest returns the newest revision of a stable schema id.
func (s *SchemaService) Latest(ctx context.Context, orgID, schemaID string) (*ent.SchemaRevision, error) {
	rev, err := s.client.SchemaRevision.Query().
		Where(
			schemarevision.SchemaIDEQ(schemaID),
			schemarevision.OrganizationIDEQ(orgID),
		).
		Order(ent.Desc(schemarevision.FieldSchemaVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("schema %s: %w", schemaID, ErrNotFound)
		}
		return nil, fmt.Errorf("querying schema %s: %w", schemaID, err)
	}
	return rev, nil
}

// GetRevision returns one revision by its revision id.
func (s *SchemaService) GetRevision(ctx context.Context, revID string) (*ent.SchemaRevision, error) {
	rev, err := s.client.SchemaRevision.Get(ctx, revID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("schema revision %s: %w", revID, ErrNotFound)
		}
		return nil, fmt.Errorf("querying schema revision %s: %w", revID, err)
	}
	return rev, nil
}

// GetVersion returns one revision by (schema_id, version).
func (s *SchemaService) GetVersion(ctx context.Context, orgID, schemaID string, version int) (*ent.SchemaRevision, error) {
	rev, err := s.client.SchemaRevision.Query().
		Where(
			schemarevision.SchemaIDEQ(schemaID),
			schemarevision.SchemaVersionEQ(version),
			schemarevision.OrganizationIDEQ(orgID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("schema %s v%d: %w", schemaID, version, ErrNotFound)
		}
		return nil, fmt.Errorf("querying schema %s v%d: %w", schemaID, version, err)
	}
	return rev, nil
}

// ResolveNameVersion resolves (name, version) to a revision id.
func (s *SchemaService) ResolveNameVersion(ctx context.Context, orgID, name string, version int) (string, error) {
	rev, err := s.client.SchemaRevision.Query().
		Where(
			schemarevision.NameEQ(name),
			schemarevision.SchemaVersionEQ(version),
			schemarevision.OrganizationIDEQ(orgID),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("schema %q v%d: %w", name, version, ErrNotFound)
		}
		return "", fmt.Errorf("resolving schema %q v%d: %w", name, version, err)
	}
	return rev.ID, nil
}

// List returns the latest revision of every schema in the organization.
func (s *SchemaService) List(ctx context.Context, orgID string) ([]*ent.SchemaRevision, error) {
	revs, err := s.client.SchemaRevision.Query().
		Where(schemarevision.OrganizationIDEQ(orgID)).
		Order(ent.Asc(schemarevision.FieldSchemaID), ent.Desc(schemarevision.FieldSchemaVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing schemas: %w", err)
	}
	var out []*ent.SchemaRevision
	seen := make(map[string]bool)
	for _, rev := range revs {
		if !seen[rev.SchemaID] {
			seen[rev.SchemaID] = true
			out = append(out, rev)
		}
	}
	return out, nil
}

// Delete removes every revision of a stable schema id.
func (s *SchemaService) Delete(ctx context.Context, orgID, schemaID string) error {
	n, err := s.client.SchemaRevision.Delete().
		Where(
			schemarevision.SchemaIDEQ(schemaID),
			schemarevision.OrganizationIDEQ(orgID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting schema %s: %w", schemaID, err)
	}
	if n == 0 {
		return fmt.Errorf("schema %s: %w", schemaID, ErrNotFound)
	}
	return nil
}
