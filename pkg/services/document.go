package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/document"
	"github.com/docrouter-ce/docrouter/ent/predicate"
	"github.com/docrouter-ce/docrouter/pkg/blob"
	"github.com/docrouter-ce/docrouter/pkg/intake"
	"github.com/docrouter-ce/docrouter/pkg/models"
	"github.com/docrouter-ce/docrouter/pkg/queue"
)

// Logical blob buckets.
const (
	BucketFiles = "files"
	BucketOCR   = "ocr"
)

// DocumentService implements the per-organization document registry and the
// intake path.
type DocumentService struct {
	client    *ent.Client
	blobs     *blob.Store
	queue     *queue.Queue
	converter *intake.Converter
	tags      *TagService
	results   *ResultService
}

// NewDocumentService creates a DocumentService.
func NewDocumentService(client *ent.Client, blobs *blob.Store, q *queue.Queue, converter *intake.Converter) *DocumentService {
	return &DocumentService{
		client:    client,
		blobs:     blobs,
		queue:     q,
		converter: converter,
		tags:      NewTagService(client),
		results:   NewResultService(client),
	}
}

// UploadRequest is one document in an upload call.
type UploadRequest struct {
	Name     string                  `json:"name"`
	Content  string                  `json:"content"`
	TagIDs   []string                `json:"tag_ids,omitempty"`
	Metadata models.DocumentMetadata `json:"metadata,omitempty"`
}

// Upload decodes, stores, registers, and enqueues one document.
func (s *DocumentService) Upload(ctx context.Context, orgID, userID string, req UploadRequest) (*ent.Document, error) {
	if req.Name == "" {
		return nil, Validationf("document name is required")
	}
	ext := strings.ToLower(filepath.Ext(req.Name))
	mimeType, err := intake.MIMEForExtension(ext)
	if err != nil {
		return nil, Validationf("%v", err)
	}

	data, _, err := intake.DecodeContent(req.Content)
	if err != nil {
		return nil, Validationf("%v", err)
	}

	if err := s.tags.ValidateTagIDs(ctx, orgID, req.TagIDs); err != nil {
		return nil, err
	}

	docID := models.NewID()
	originalKey := docID + ext
	if err := s.blobs.Save(ctx, BucketFiles, originalKey, data, map[string]string{
		"document_id":    docID,
		"type":           mimeType,
		"size":           strconv.Itoa(len(data)),
		"user_file_name": req.Name,
	}); err != nil {
		return nil, err
	}

	pdfKey, pdfID := originalKey, docID
	if intake.NeedsConversion(ext) {
		pdf, err := s.converter.ToPDF(ctx, data, ext)
		if err != nil {
			return nil, fmt.Errorf("converting %s to PDF: %w", req.Name, err)
		}
		pdfID = models.NewID()
		pdfKey = pdfID + ".pdf"
		if err := s.blobs.Save(ctx, BucketFiles, pdfKey, pdf, map[string]string{
			"document_id":    docID,
			"type":           "application/pdf",
			"size":           strconv.Itoa(len(pdf)),
			"user_file_name": req.Name,
		}); err != nil {
			return nil, err
		}
	}

	doc, err := s.client.Document.Create().
		SetID(docID).
		SetOrganizationID(orgID).
		SetUserFileName(req.Name).
		SetMongoFileName(originalKey).
		SetPdfFileName(pdfKey).
		SetPdfID(pdfID).
		SetUploadedBy(userID).
		SetTagIds(req.TagIDs).
		SetMetadata(req.Metadata).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("registering document: %w", err)
	}

	if _, err := s.queue.Send(ctx, queue.QueueOCR, "ocr", map[string]any{
		"document_id": doc.ID,
	}); err != nil {
		return nil, err
	}

	slog.Info("Document uploaded",
		"document_id", doc.ID, "org_id", orgID, "name", req.Name, "size", len(data))
	return doc, nil
}

// ListFilter selects and paginates a registry listing.
type ListFilter struct {
	Skip           int
	Limit          int
	TagIDs         []string // AND-set: documents must carry all of these
	NameSearch     string   // case-insensitive regex on user_file_name
	MetadataSearch string   // comma-separated key=value pairs, URL-encoded
}

// List returns one page of the organization's documents, newest first.
func (s *DocumentService) List(ctx context.Context, orgID string, filter ListFilter) (*models.ListDocumentsResponse, error) {
	if filter.Skip < 0 {
		return nil, Validationf("skip must be >= 0")
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		return nil, Validationf("limit must be between 1 and 100")
	}

	preds := []predicate.Document{document.OrganizationIDEQ(orgID)}
	for _, tagID := range filter.TagIDs {
		tagID := tagID
		preds = append(preds, func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(document.FieldTagIds, tagID))
		})
	}
	if filter.NameSearch != "" {
		search := filter.NameSearch
		preds = append(preds, func(sel *sql.Selector) {
			sel.Where(sql.P(func(b *sql.Builder) {
				b.Ident(sel.C(document.FieldUserFileName)).WriteString(" ~* ").Arg(search)
			}))
		})
	}
	if filter.MetadataSearch != "" {
		metaPreds, err := metadataPredicates(filter.MetadataSearch)
		if err != nil {
			return nil, err
		}
		preds = append(preds, metaPreds...)
	}

	q := s.client.Document.Query().Where(preds...)
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting documents: %w", err)
	}
	docs, err := q.
		Order(ent.Desc(document.FieldUploadDate)).
		Offset(filter.Skip).
		Limit(filter.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	out := &models.ListDocumentsResponse{
		Documents:  make([]models.DocumentResponse, 0, len(docs)),
		TotalCount: total,
		Skip:       filter.Skip,
	}
	for _, d := range docs {
		out.Documents = append(out.Documents, toDocumentResponse(d))
	}
	return out, nil
}

// likeEscaper neutralizes LIKE metacharacters so search values match
// literally. Postgres treats backslash as the default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// metadataPredicates parses "k1=v1,k2=v2" (URL-encoded) into predicates
// matching key equality and value substring.
func metadataPredicates(search string) ([]predicate.Document, error) {
	var preds []predicate.Document
	for _, pair := range strings.Split(search, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, Validationf("malformed metadata_search pair %q", pair)
		}
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, Validationf("malformed metadata_search key %q", k)
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, Validationf("malformed metadata_search value %q", v)
		}
		preds = append(preds, func(sel *sql.Selector) {
			sel.Where(sql.P(func(b *sql.Builder) {
				b.WriteString("(").Ident(sel.C(document.FieldMetadata)).
					WriteString(" ->> ").Arg(key).WriteString(")")
				b.WriteString(" LIKE ").Arg("%" + likeEscaper.Replace(value) + "%")
			}))
		})
	}
	return preds, nil
}

// Get returns one registry row, scoped to the organization.
func (s *DocumentService) Get(ctx context.Context, orgID, docID string) (*ent.Document, error) {
	doc, err := s.client.Document.Query().
		Where(document.IDEQ(docID), document.OrganizationIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", docID, ErrNotFound)
		}
		return nil, fmt.Errorf("querying document %s: %w", docID, err)
	}
	return doc, nil
}

// GetBytes returns the document's stored bytes, either the original upload or
// the PDF view.
func (s *DocumentService) GetBytes(ctx context.Context, orgID, docID, fileType string) (*ent.Document, *blob.Blob, error) {
	doc, err := s.Get(ctx, orgID, docID)
	if err != nil {
		return nil, nil, err
	}
	key := doc.MongoFileName
	switch fileType {
	case "", "original":
	case "pdf":
		key = doc.PdfFileName
	default:
		return nil, nil, Validationf("file_type must be original or pdf")
	}
	b, err := s.blobs.Get(ctx, BucketFiles, key)
	if err != nil {
		return nil, nil, err
	}
	return doc, b, nil
}

// UpdateRequest carries a registry row update. Nil fields are unchanged.
type UpdateRequest struct {
	Name     *string                  `json:"name,omitempty"`
	TagIDs   *[]string                `json:"tag_ids,omitempty"`
	Metadata *models.DocumentMetadata `json:"metadata,omitempty"`
}

// Update modifies name, tags, or metadata.
func (s *DocumentService) Update(ctx context.Context, orgID, docID string, req UpdateRequest) (*ent.Document, error) {
	doc, err := s.Get(ctx, orgID, docID)
	if err != nil {
		return nil, err
	}
	upd := doc.Update()
	if req.Name != nil {
		if *req.Name == "" {
			return nil, Validationf("document name cannot be empty")
		}
		upd.SetUserFileName(*req.Name)
	}
	if req.TagIDs != nil {
		if err := s.tags.ValidateTagIDs(ctx, orgID, *req.TagIDs); err != nil {
			return nil, err
		}
		upd.SetTagIds(*req.TagIDs)
	}
	if req.Metadata != nil {
		upd.SetMetadata(*req.Metadata)
	}
	doc, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating document %s: %w", docID, err)
	}
	return doc, nil
}

// Delete removes the registry row and cascades: original blob, PDF blob when
// distinct, all OCR artifacts, and all result revisions.
func (s *DocumentService) Delete(ctx context.Context, orgID, docID string) error {
	doc, err := s.Get(ctx, orgID, docID)
	if err != nil {
		return err
	}

	if err := s.results.DeleteAllForDocument(ctx, docID); err != nil {
		return err
	}
	if err := s.blobs.DeletePrefix(ctx, BucketOCR, docID+"_"); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, BucketFiles, doc.MongoFileName); err != nil {
		return err
	}
	if doc.PdfFileName != doc.MongoFileName {
		if err := s.blobs.Delete(ctx, BucketFiles, doc.PdfFileName); err != nil {
			return err
		}
	}

	if err := s.client.Document.DeleteOneID(docID).Exec(ctx); err != nil {
		return fmt.Errorf("deleting document %s: %w", docID, err)
	}
	slog.Info("Document deleted", "document_id", docID, "org_id", orgID)
	return nil
}

// SetState applies a state machine transition and stamps state_updated_at.
func (s *DocumentService) SetState(ctx context.Context, docID string, to models.DocumentState) error {
	doc, err := s.client.Document.Get(ctx, docID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("document %s: %w", docID, ErrNotFound)
		}
		return fmt.Errorf("querying document %s: %w", docID, err)
	}
	from := models.DocumentState(doc.State)
	if !models.CanTransition(from, to) {
		return Validationf("invalid state transition %s -> %s for document %s", from, to, docID)
	}
	if err := doc.Update().
		SetState(document.State(to)).
		SetStateUpdatedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("updating document %s state: %w", docID, err)
	}
	slog.Info("Document state changed", "document_id", docID, "from", from, "to", to)
	return nil
}

// GetByID returns a registry row without organization scoping, for worker
// handlers that receive only a document id.
func (s *DocumentService) GetByID(ctx context.Context, docID string) (*ent.Document, error) {
	doc, err := s.client.Document.Get(ctx, docID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", docID, ErrNotFound)
		}
		return nil, fmt.Errorf("querying document %s: %w", docID, err)
	}
	return doc, nil
}

// StuckDocuments returns documents sitting in a processing state longer than
// the threshold. Observability only; reprocessing is an operator action.
func (s *DocumentService) StuckDocuments(ctx context.Context, threshold time.Duration) ([]*ent.Document, error) {
	cutoff := time.Now().Add(-threshold)
	docs, err := s.client.Document.Query().
		Where(
			document.StateIn(document.StateOcrProcessing, document.StateLlmProcessing),
			document.StateUpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning for stuck documents: %w", err)
	}
	return docs, nil
}

func toDocumentResponse(d *ent.Document) models.DocumentResponse {
	return models.DocumentResponse{
		ID:             d.ID,
		OrganizationID: d.OrganizationID,
		UserFileName:   d.UserFileName,
		PDFID:          d.PdfID,
		UploadDate:     d.UploadDate,
		UploadedBy:     d.UploadedBy,
		State:          models.DocumentState(d.State),
		TagIDs:         d.TagIds,
		Metadata:       d.Metadata,
	}
}
