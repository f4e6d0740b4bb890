package services

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/predicate"
	"github.com/docrouter-ce/docrouter/ent/promptrevision"
	"github.com/docrouter-ce/docrouter/pkg/llm"
	"github.com/docrouter-ce/docrouter/pkg/models"
)

// DefaultPromptRevID is the sentinel revision id of the built-in
// classification prompt. It never appears in the prompt store.
const DefaultPromptRevID = "default"

// PromptService implements the two-tier versioned prompt store.
type PromptService struct {
	client  *ent.Client
	schemas *SchemaService
	tags    *TagService
}

// NewPromptService creates a PromptService.
func NewPromptService(client *ent.Client) *PromptService {
	return &PromptService{
		client:  client,
		schemas: NewSchemaService(client),
		tags:    NewTagService(client),
	}
}

// PromptRequest carries prompt create/update fields.
type PromptRequest struct {
	Name          string   `json:"name"`
	Content       string   `json:"content"`
	SchemaID      string   `json:"schema_id,omitempty"`
	SchemaVersion int      `json:"schema_version,omitempty"`
	TagIDs        []string `json:"tag_ids,omitempty"`
	Model         string   `json:"model,omitempty"`
}

func (s *PromptService) validate(ctx context.Context, orgID string, req *PromptRequest) error {
	if req.Name == "" {
		return Validationf("prompt name is required")
	}
	if req.Content == "" {
		return Validationf("prompt content is required")
	}
	if req.Model == "" {
		req.Model = llm.DefaultModel
	} else if !llm.IsSupportedModel(req.Model) {
		return Validationf("model %q is not a supported chat model", req.Model)
	}
	if err := s.tags.ValidateTagIDs(ctx, orgID, req.TagIDs); err != nil {
		return err
	}
	if req.SchemaID != "" {
		if req.SchemaVersion < 1 {
			return Validationf("schema_version is required when schema_id is set")
		}
		if _, err := s.schemas.GetVersion(ctx, orgID, req.SchemaID, req.SchemaVersion); err != nil {
			return err
		}
	}
	return nil
}

// Create inserts version 1 of a new prompt.
func (s *PromptService) Create(ctx context.Context, orgID, userID string, req PromptRequest) (*ent.PromptRevision, error) {
	if err := s.validate(ctx, orgID, &req); err != nil {
		return nil, err
	}
	rev, err := s.client.PromptRevision.Create().
		SetPromptID(models.NewID()).
		SetPromptVersion(1).
		SetName(req.Name).
		SetContent(req.Content).
		SetSchemaID(req.SchemaID).
		SetSchemaVersion(req.SchemaVersion).
		SetTagIds(req.TagIDs).
		SetModel(req.Model).
		SetOrganizationID(orgID).
		SetCreatedBy(userID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating prompt: %w", err)
	}
	return rev, nil
}

// Update appends a new revision with version = max(existing)+1.
func (s *PromptService) Update(ctx context.Context, orgID, promptID, userID string, req PromptRequest) (*ent.PromptRevision, error) {
	if err := s.validate(ctx, orgID, &req); err != nil {
		return nil, err
	}
	latest, err := s.Latest(ctx, orgID, promptID)
	if err != nil {
		return nil, err
	}
	rev, err := s.client.PromptRevision.Create().
		SetPromptID(promptID).
		SetPromptVersion(latest.PromptVersion + 1).
		SetName(req.Name).
		SetContent(req.Content).
		SetSchemaID(req.SchemaID).
		SetSchemaVersion(req.SchemaVersion).
		SetTagIds(req.TagIDs).
		SetModel(req.Model).
		SetOrganizationID(orgID).
		SetCreatedBy(userID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating prompt revision: %w", err)
	}
	return rev, nil
}

// Latest returns the newest revision of a stable prompt id.
func (s *PromptService) Latest(ctx context.Context, orgID, promptID string) (*ent.PromptRevision, error) {
	rev, err := s.client.PromptRevision.Query().
		Where(
			promptrevision.PromptIDEQ(promptID),
			promptrevision.OrganizationIDEQ(orgID),
		).
		Order(ent.Desc(promptrevision.FieldPromptVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("prompt %s: %w", promptID, ErrNotFound)
		}
		return nil, fmt.Errorf("querying prompt %s: %w", promptID, err)
	}
	return rev, nil
}

// GetRevision returns one revision by its revision id.
func (s *PromptService) GetRevision(ctx context.Context, revID string) (*ent.PromptRevision, error) {
	rev, err := s.client.PromptRevision.Get(ctx, revID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("prompt revision %s: %w", revID, ErrNotFound)
		}
		return nil, fmt.Errorf("querying prompt revision %s: %w", revID, err)
	}
	return rev, nil
}

// ResolveNameVersion resolves (name, version) to a revision id.
func (s *PromptService) ResolveNameVersion(ctx context.Context, orgID, name string, version int) (string, error) {
	rev, err := s.client.PromptRevision.Query().
		Where(
			promptrevision.NameEQ(name),
			promptrevision.PromptVersionEQ(version),
			promptrevision.OrganizationIDEQ(orgID),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("prompt %q v%d: %w", name, version, ErrNotFound)
		}
		return "", fmt.Errorf("resolving prompt %q v%d: %w", name, version, err)
	}
	return rev.ID, nil
}

// List returns the latest revision of every prompt in the organization.
func (s *PromptService) List(ctx context.Context, orgID string) ([]*ent.PromptRevision, error) {
	revs, err := s.client.PromptRevision.Query().
		Where(promptrevision.OrganizationIDEQ(orgID)).
		Order(ent.Asc(promptrevision.FieldPromptID), ent.Desc(promptrevision.FieldPromptVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}
	var out []*ent.PromptRevision
	seen := make(map[string]bool)
	for _, rev := range revs {
		if !seen[rev.PromptID] {
			seen[rev.PromptID] = true
			out = append(out, rev)
		}
	}
	return out, nil
}

// RevisionsByTags returns the revisions whose tag set intersects tagIDs.
// With latestOnly, only the highest version per stable prompt id among the
// matching rows is returned.
func (s *PromptService) RevisionsByTags(ctx context.Context, orgID string, tagIDs []string, latestOnly bool) ([]*ent.PromptRevision, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	tagPreds := make([]predicate.PromptRevision, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		tagID := tagID
		tagPreds = append(tagPreds, func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(promptrevision.FieldTagIds, tagID))
		})
	}
	revs, err := s.client.PromptRevision.Query().
		Where(
			promptrevision.OrganizationIDEQ(orgID),
			promptrevision.Or(tagPreds...),
		).
		Order(ent.Asc(promptrevision.FieldPromptID), ent.Desc(promptrevision.FieldPromptVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying prompts by tags: %w", err)
	}
	if !latestOnly {
		return revs, nil
	}
	// Latest is computed over the matching rows only.
	var out []*ent.PromptRevision
	seen := make(map[string]bool)
	for _, rev := range revs {
		if !seen[rev.PromptID] {
			seen[rev.PromptID] = true
			out = append(out, rev)
		}
	}
	return out, nil
}

// Delete removes every revision of a stable prompt id.
func (s *PromptService) Delete(ctx context.Context, orgID, promptID string) error {
	n, err := s.client.PromptRevision.Delete().
		Where(
			promptrevision.PromptIDEQ(promptID),
			promptrevision.OrganizationIDEQ(orgID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting prompt %s: %w", promptID, err)
	}
	if n == 0 {
		return fmt.Errorf("prompt %s: %w", promptID, ErrNotFound)
	}
	return nil
}
