// Package credit gates paid operations on an organization's SPU balance and
// records consumption.
package credit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docrouter-ce/docrouter/ent"
)

// LLMMultiplier scales recorded SPU consumption for extraction calls.
const LLMMultiplier = 10

// Usage describes one chargeable operation.
type Usage struct {
	OrganizationID   string
	SPUs             int
	Source           string // "ocr" or "llm"
	Provider         string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Cost             float64
}

// Gate decides whether an organization may spend SPUs and records what was
// spent. Implementations must treat Check as advisory and Record as
// best-effort accounting.
type Gate interface {
	// Check reports whether the organization has credit for spus.
	Check(ctx context.Context, organizationID string, spus int) (bool, error)
	// Record logs consumed credit after a successful operation.
	Record(ctx context.Context, usage Usage) error
}

// NoopGate allows everything and records nothing. It is the default when no
// billing backend is wired.
type NoopGate struct{}

func (NoopGate) Check(ctx context.Context, organizationID string, spus int) (bool, error) {
	return true, nil
}

func (NoopGate) Record(ctx context.Context, usage Usage) error { return nil }

// DBGate allows everything but persists usage records for later accounting.
type DBGate struct {
	client *ent.Client
}

// NewDBGate creates a gate that records usage in the database.
func NewDBGate(client *ent.Client) *DBGate {
	return &DBGate{client: client}
}

func (g *DBGate) Check(ctx context.Context, organizationID string, spus int) (bool, error) {
	return true, nil
}

func (g *DBGate) Record(ctx context.Context, usage Usage) error {
	err := g.client.UsageRecord.Create().
		SetOrganizationID(usage.OrganizationID).
		SetSpus(usage.SPUs).
		SetSource(usage.Source).
		SetProvider(usage.Provider).
		SetModel(usage.Model).
		SetPromptTokens(usage.PromptTokens).
		SetCompletionTokens(usage.CompletionTokens).
		SetTotalTokens(usage.TotalTokens).
		SetCost(usage.Cost).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("recording usage for org %s: %w", usage.OrganizationID, err)
	}
	slog.Debug("Recorded SPU usage",
		"org_id", usage.OrganizationID, "spus", usage.SPUs,
		"source", usage.Source, "model", usage.Model)
	return nil
}
