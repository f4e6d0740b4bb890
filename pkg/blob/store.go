// Package blob implements content storage keyed by logical (bucket, key),
// chunked for large payloads.
package blob

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/blobchunk"
	"github.com/docrouter-ce/docrouter/ent/blobobject"
)

// ChunkSize is the payload slice size for large blobs.
const ChunkSize = 8 << 20 // 8 MiB

// Sentinel errors for blob operations.
var (
	// ErrNotFound indicates no blob exists at (bucket, key).
	ErrNotFound = errors.New("blob not found")

	// ErrStorageFailed indicates a storage operation failed after exhausting
	// its retries.
	ErrStorageFailed = errors.New("storage failed")
)

// Blob is one stored object.
type Blob struct {
	Bucket     string
	Key        string
	Bytes      []byte
	Metadata   map[string]string
	UploadDate time.Time
}

// Store reads and writes blobs. Writes use delete-then-insert ordering with
// read-after-delete verification, so readers never observe partial writes.
type Store struct {
	client *ent.Client

	deleteAttempts int
	verifyAttempts int
	verifyDelay    time.Duration
}

// NewStore creates a blob store on the given database client.
func NewStore(client *ent.Client) *Store {
	return &Store{
		client:         client,
		deleteAttempts: 3,
		verifyAttempts: 3,
		verifyDelay:    2 * time.Second,
	}
}

// Get returns the blob at (bucket, key), or ErrNotFound.
func (s *Store) Get(ctx context.Context, bucket, key string) (*Blob, error) {
	obj, err := s.client.BlobObject.Query().
		Where(blobobject.BucketEQ(bucket), blobobject.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying blob %s/%s: %w", bucket, key, err)
	}

	chunks, err := s.client.BlobChunk.Query().
		Where(blobchunk.BlobIDEQ(obj.ID)).
		Order(ent.Asc(blobchunk.FieldN)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading blob chunks %s/%s: %w", bucket, key, err)
	}

	data := make([]byte, 0, obj.Size)
	for _, c := range chunks {
		data = append(data, c.Data...)
	}

	return &Blob{
		Bucket:     bucket,
		Key:        key,
		Bytes:      data,
		Metadata:   obj.Metadata,
		UploadDate: obj.UploadDate,
	}, nil
}

// Exists reports whether a blob is stored at (bucket, key).
func (s *Store) Exists(ctx context.Context, bucket, key string) (bool, error) {
	n, err := s.client.BlobObject.Query().
		Where(blobobject.BucketEQ(bucket), blobobject.KeyEQ(key)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("checking blob %s/%s: %w", bucket, key, err)
	}
	return n > 0, nil
}

// Save overwrites the blob at (bucket, key): delete the existing object,
// verify it is gone, then insert the new payload in ChunkSize slices.
func (s *Store) Save(ctx context.Context, bucket, key string, data []byte, metadata map[string]string) error {
	if err := s.deleteAndVerify(ctx, bucket, key); err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting blob write: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	obj, err := tx.BlobObject.Create().
		SetBucket(bucket).
		SetKey(key).
		SetSize(int64(len(data))).
		SetMetadata(metadata).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("inserting blob %s/%s: %w", bucket, key, err)
	}

	for n := 0; n*ChunkSize < len(data) || (n == 0 && len(data) == 0); n++ {
		start := n * ChunkSize
		end := min(start+ChunkSize, len(data))
		if _, err := tx.BlobChunk.Create().
			SetBlobID(obj.ID).
			SetN(n).
			SetData(data[start:end]).
			Save(ctx); err != nil {
			return fmt.Errorf("inserting blob chunk %d of %s/%s: %w", n, bucket, key, err)
		}
		if end == len(data) {
			break
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing blob %s/%s: %w", bucket, key, err)
	}
	return nil
}

// Delete removes the blob at (bucket, key). Idempotent: silent when absent.
func (s *Store) Delete(ctx context.Context, bucket, key string) error {
	return s.deleteAndVerify(ctx, bucket, key)
}

// DeletePrefix removes every blob in the bucket whose key starts with prefix.
// Used for cascading removal of a document's derived artifacts.
func (s *Store) DeletePrefix(ctx context.Context, bucket, prefix string) error {
	_, err := s.client.BlobObject.Delete().
		Where(blobobject.BucketEQ(bucket), blobobject.KeyHasPrefix(prefix)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: deleting %s/%s*: %v", ErrStorageFailed, bucket, prefix, err)
	}
	return nil
}

// deleteAndVerify deletes any object at (bucket, key), retrying on transient
// error, then verifies absence before returning.
func (s *Store) deleteAndVerify(ctx context.Context, bucket, key string) error {
	var lastErr error
	for attempt := 1; attempt <= s.deleteAttempts; attempt++ {
		_, err := s.client.BlobObject.Delete().
			Where(blobobject.BucketEQ(bucket), blobobject.KeyEQ(key)).
			Exec(ctx)
		if err != nil {
			lastErr = err
			slog.Warn("Blob delete failed, retrying",
				"bucket", bucket, "key", key, "attempt", attempt, "error", err)
			continue
		}

		gone, verr := s.verifyAbsent(ctx, bucket, key)
		if verr != nil {
			lastErr = verr
			continue
		}
		if gone {
			return nil
		}
		lastErr = fmt.Errorf("blob %s/%s still present after delete", bucket, key)
	}
	return fmt.Errorf("%w: deleting %s/%s: %v", ErrStorageFailed, bucket, key, lastErr)
}

// verifyAbsent polls until the object is no longer visible.
func (s *Store) verifyAbsent(ctx context.Context, bucket, key string) (bool, error) {
	for attempt := 1; attempt <= s.verifyAttempts; attempt++ {
		exists, err := s.Exists(ctx, bucket, key)
		if err != nil {
			return false, err
		}
		if !exists {
			return true, nil
		}
		if attempt < s.verifyAttempts {
			select {
			case <-ctx.Done():
				return false, ctx.Err()
			case <-time.After(s.verifyDelay):
			}
		}
	}
	return false, nil
}
