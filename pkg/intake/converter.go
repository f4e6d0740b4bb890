package intake

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// Converter turns office documents into PDFs by shelling out to an external
// converter. The converter binary is not safe to run concurrently, so every
// invocation takes a cross-process file lock first.
type Converter struct {
	command  string
	lockPath string
	timeout  time.Duration
}

// NewConverter creates a Converter using the given binary and lock path.
func NewConverter(command, lockPath string) *Converter {
	return &Converter{
		command:  command,
		lockPath: lockPath,
		timeout:  2 * time.Minute,
	}
}

// ToPDF converts the document bytes to PDF. ext is the source extension
// (".docx", ".xls", …) and selects the converter's input filter.
func (c *Converter) ToPDF(ctx context.Context, data []byte, ext string) ([]byte, error) {
	if !NeedsConversion(ext) {
		return nil, fmt.Errorf("extension %q is not convertible", ext)
	}

	lock := flock.New(c.lockPath)
	lockCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	locked, err := lock.TryLockContext(lockCtx, 250*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("acquiring converter lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("converter lock unavailable")
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			slog.Warn("Failed to release converter lock", "path", c.lockPath, "error", err)
		}
	}()

	workDir, err := os.MkdirTemp("", "docrouter-convert-*")
	if err != nil {
		return nil, fmt.Errorf("creating conversion workdir: %w", err)
	}
	defer os.RemoveAll(workDir)

	in := filepath.Join(workDir, "input"+ext)
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return nil, fmt.Errorf("writing conversion input: %w", err)
	}

	cmdCtx, cancelCmd := context.WithTimeout(ctx, c.timeout)
	defer cancelCmd()
	cmd := exec.CommandContext(cmdCtx, c.command,
		"--headless", "--convert-to", "pdf", "--outdir", workDir, in)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("converter failed: %w: %s", err, out)
	}

	pdf, err := os.ReadFile(filepath.Join(workDir, "input.pdf"))
	if err != nil {
		return nil, fmt.Errorf("reading conversion output: %w", err)
	}
	return pdf, nil
}
