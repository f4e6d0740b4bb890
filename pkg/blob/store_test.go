package blob_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docrouter-ce/docrouter/pkg/blob"
	testdb "github.com/docrouter-ce/docrouter/test/database"
)

func TestStore_SaveAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := blob.NewStore(client.Client)
	ctx := context.Background()

	data := []byte("hello blob")
	meta := map[string]string{"document_id": "doc1", "type": "text/plain"}
	require.NoError(t, store.Save(ctx, "files", "doc1.txt", data, meta))

	b, err := store.Get(ctx, "files", "doc1.txt")
	require.NoError(t, err)
	assert.Equal(t, data, b.Bytes)
	assert.Equal(t, "doc1", b.Metadata["document_id"])
	assert.False(t, b.UploadDate.IsZero())
}

func TestStore_GetMissing(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := blob.NewStore(client.Client)

	_, err := store.Get(context.Background(), "files", "nope")
	assert.ErrorIs(t, err, blob.ErrNotFound)
}

func TestStore_SaveOverwrites(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := blob.NewStore(client.Client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "files", "k", []byte("first"), nil))
	require.NoError(t, store.Save(ctx, "files", "k", []byte("second"), nil))

	b, err := store.Get(ctx, "files", "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), b.Bytes)
}

func TestStore_EmptyPayload(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := blob.NewStore(client.Client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "ocr", "empty", nil, nil))
	b, err := store.Get(ctx, "ocr", "empty")
	require.NoError(t, err)
	assert.Empty(t, b.Bytes)
}

func TestStore_BucketsAreIsolated(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := blob.NewStore(client.Client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "files", "same-key", []byte("files"), nil))
	require.NoError(t, store.Save(ctx, "ocr", "same-key", []byte("ocr"), nil))

	b, err := store.Get(ctx, "files", "same-key")
	require.NoError(t, err)
	assert.Equal(t, []byte("files"), b.Bytes)

	b, err = store.Get(ctx, "ocr", "same-key")
	require.NoError(t, err)
	assert.Equal(t, []byte("ocr"), b.Bytes)
}

func TestStore_Delete(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := blob.NewStore(client.Client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "files", "gone", []byte("x"), nil))
	require.NoError(t, store.Delete(ctx, "files", "gone"))

	_, err := store.Get(ctx, "files", "gone")
	assert.ErrorIs(t, err, blob.ErrNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(ctx, "files", "gone"))
}

func TestStore_DeletePrefix(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := blob.NewStore(client.Client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "ocr", "doc1_json", []byte("a"), nil))
	require.NoError(t, store.Save(ctx, "ocr", "doc1_text", []byte("b"), nil))
	require.NoError(t, store.Save(ctx, "ocr", "doc1_text_page_0", []byte("c"), nil))
	require.NoError(t, store.Save(ctx, "ocr", "doc2_text", []byte("keep"), nil))

	require.NoError(t, store.DeletePrefix(ctx, "ocr", "doc1_"))

	for _, key := range []string{"doc1_json", "doc1_text", "doc1_text_page_0"} {
		exists, err := store.Exists(ctx, "ocr", key)
		require.NoError(t, err)
		assert.False(t, exists, key)
	}
	exists, err := store.Exists(ctx, "ocr", "doc2_text")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_LargePayloadRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := blob.NewStore(client.Client)
	ctx := context.Background()

	// Spans multiple chunks.
	data := bytes.Repeat([]byte{0xAB}, blob.ChunkSize+1024)
	require.NoError(t, store.Save(ctx, "files", "big.pdf", data, nil))

	b, err := store.Get(ctx, "files", "big.pdf")
	require.NoError(t, err)
	assert.Equal(t, len(data), len(b.Bytes))
	assert.Equal(t, data, b.Bytes)
}
