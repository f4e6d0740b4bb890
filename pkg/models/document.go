package models

import "time"

// DocumentState is the document lifecycle state.
type DocumentState string

// Document lifecycle states. Initial state is StateUploaded; each stage has
// a terminal failed state that requires operator reprocessing (force-run).
const (
	StateUploaded      DocumentState = "uploaded"
	StateOCRProcessing DocumentState = "ocr_processing"
	StateOCRCompleted  DocumentState = "ocr_completed"
	StateOCRFailed     DocumentState = "ocr_failed"
	StateLLMProcessing DocumentState = "llm_processing"
	StateLLMCompleted  DocumentState = "llm_completed"
	StateLLMFailed     DocumentState = "llm_failed"
)

// validTransitions encodes the document state machine.
// The uploaded → ocr_completed edge covers the skip rule for file formats
// that do not support OCR.
var validTransitions = map[DocumentState][]DocumentState{
	StateUploaded:      {StateOCRProcessing, StateOCRCompleted},
	StateOCRProcessing: {StateOCRCompleted, StateOCRFailed},
	StateOCRCompleted:  {StateLLMProcessing},
	StateOCRFailed:     {StateOCRProcessing},
	StateLLMProcessing: {StateLLMCompleted, StateLLMFailed},
	StateLLMCompleted:  {StateLLMProcessing},
	StateLLMFailed:     {StateLLMProcessing},
}

// CanTransition reports whether from → to is a legal state machine edge.
func CanTransition(from, to DocumentState) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DocumentMetadata is the user-defined string→string metadata mapping.
type DocumentMetadata map[string]string

// DocumentResponse is the wire representation of a registry row.
type DocumentResponse struct {
	ID             string            `json:"id"`
	OrganizationID string            `json:"organization_id"`
	UserFileName   string            `json:"user_file_name"`
	PDFID          string            `json:"pdf_id,omitempty"`
	UploadDate     time.Time         `json:"upload_date"`
	UploadedBy     string            `json:"uploaded_by"`
	State          DocumentState     `json:"state"`
	TagIDs         []string          `json:"tag_ids"`
	Metadata       DocumentMetadata  `json:"metadata,omitempty"`
}

// ListDocumentsResponse carries one page of registry rows.
type ListDocumentsResponse struct {
	Documents  []DocumentResponse `json:"documents"`
	TotalCount int                `json:"total_count"`
	Skip       int                `json:"skip"`
}
