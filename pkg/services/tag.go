package services

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/document"
	"github.com/docrouter-ce/docrouter/ent/promptrevision"
	"github.com/docrouter-ce/docrouter/ent/tag"
)

// TagService implements organization-scoped tag CRUD with referential
// integrity against documents and prompt revisions.
type TagService struct {
	client *ent.Client
}

// NewTagService creates a TagService.
func NewTagService(client *ent.Client) *TagService {
	return &TagService{client: client}
}

// TagRequest carries tag create/update fields.
type TagRequest struct {
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// Create inserts a tag. Names are unique (case-sensitive) per organization.
func (s *TagService) Create(ctx context.Context, orgID, userID string, req TagRequest) (*ent.Tag, error) {
	if req.Name == "" {
		return nil, Validationf("tag name is required")
	}
	t, err := s.client.Tag.Create().
		SetOrganizationID(orgID).
		SetName(req.Name).
		SetColor(req.Color).
		SetDescription(req.Description).
		SetCreatedBy(userID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("tag %q: %w", req.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("creating tag: %w", err)
	}
	return t, nil
}

// List returns all of the organization's tags.
func (s *TagService) List(ctx context.Context, orgID string) ([]*ent.Tag, error) {
	tags, err := s.client.Tag.Query().
		Where(tag.OrganizationIDEQ(orgID)).
		Order(ent.Asc(tag.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	return tags, nil
}

// Get returns one tag, scoped to the organization.
func (s *TagService) Get(ctx context.Context, orgID, tagID string) (*ent.Tag, error) {
	t, err := s.client.Tag.Query().
		Where(tag.IDEQ(tagID), tag.OrganizationIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("tag %s: %w", tagID, ErrNotFound)
		}
		return nil, fmt.Errorf("querying tag %s: %w", tagID, err)
	}
	return t, nil
}

// Update modifies a tag's fields.
func (s *TagService) Update(ctx context.Context, orgID, tagID string, req TagRequest) (*ent.Tag, error) {
	t, err := s.Get(ctx, orgID, tagID)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, Validationf("tag name is required")
	}
	t, err = t.Update().
		SetName(req.Name).
		SetColor(req.Color).
		SetDescription(req.Description).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("tag %q: %w", req.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("updating tag %s: %w", tagID, err)
	}
	return t, nil
}

// Delete removes a tag. Refused while any document or prompt revision still
// references it.
func (s *TagService) Delete(ctx context.Context, orgID, tagID string) error {
	if _, err := s.Get(ctx, orgID, tagID); err != nil {
		return err
	}

	nDocs, err := s.client.Document.Query().
		Where(document.OrganizationIDEQ(orgID)).
		Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(document.FieldTagIds, tagID))
		}).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking tag references in documents: %w", err)
	}
	nPrompts, err := s.client.PromptRevision.Query().
		Where(promptrevision.OrganizationIDEQ(orgID)).
		Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(promptrevision.FieldTagIds, tagID))
		}).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking tag references in prompts: %w", err)
	}
	if nDocs > 0 || nPrompts > 0 {
		return fmt.Errorf("tag %s referenced by %d documents and %d prompts: %w",
			tagID, nDocs, nPrompts, ErrTagReferenced)
	}

	if err := s.client.Tag.DeleteOneID(tagID).Exec(ctx); err != nil {
		return fmt.Errorf("deleting tag %s: %w", tagID, err)
	}
	return nil
}

// ValidateTagIDs checks that every id references a tag in the organization.
func (s *TagService) ValidateTagIDs(ctx context.Context, orgID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	n, err := s.client.Tag.Query().
		Where(tag.OrganizationIDEQ(orgID), tag.IDIn(tagIDs...)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("validating tags: %w", err)
	}
	if n != len(tagIDs) {
		return Validationf("one or more tag ids do not exist in this organization")
	}
	return nil
}
