// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deckgen/pkg/types"
)

func testRecord(root string) types.RunRecord {
	return types.RunRecord{
		StartedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		SlidesRoot: root,
		OutputPath: "out/deck.pptx",
		Slides:     3,
		Tables:     2,
		Images:     1,
		OutputSHA:  "deadbeef",
	}
}

func TestStore_RecordAndList(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	id, err := store.Record(ctx, testRecord("slides"))
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	records, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "slides", rec.SlidesRoot)
	assert.Equal(t, "out/deck.pptx", rec.OutputPath)
	assert.Equal(t, 3, rec.Slides)
	assert.Equal(t, 2, rec.Tables)
	assert.Equal(t, 1, rec.Images)
	assert.Equal(t, "deadbeef", rec.OutputSHA)
	assert.Equal(t, 2026, rec.StartedAt.Year())
}

func TestStore_ListNewestFirstWithLimit(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	for _, root := range []string{"first", "second", "third"} {
		_, err := store.Record(ctx, testRecord(root))
		require.NoError(t, err)
	}

	records, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "third", records[0].SlidesRoot)
	assert.Equal(t, "second", records[1].SlidesRoot)
}

func TestStore_ListEmpty(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	records, err := store.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_ReopenKeepsRuns(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	_, err = store.Record(context.Background(), testRecord("persisted"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "persisted", records[0].SlidesRoot)
}
