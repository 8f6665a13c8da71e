package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-loandocs/pkg/canonical"
	"github.com/goliatone/go-loandocs/pkg/store"
)

func TestMemoryLoadMissingSession(t *testing.T) {
	memory := store.NewMemory()

	_, err := memory.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemorySaveAndLoad(t *testing.T) {
	ctx := context.Background()
	memory := store.NewMemory()

	var rec canonical.Record
	rec.Identity.FirstName = "Jane"
	rec.Assets.Checking = []canonical.Account{{Institution: "Chase", AccountNumber: "1111"}}

	require.NoError(t, memory.Save(ctx, "s1", rec))

	loaded, err := memory.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, rec, loaded)
}

func TestMemoryLoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	memory := store.NewMemory()

	var rec canonical.Record
	rec.Assets.Savings = []canonical.Account{{Institution: "Ally", Balance: "10"}}
	require.NoError(t, memory.Save(ctx, "s1", rec))

	loaded, err := memory.Load(ctx, "s1")
	require.NoError(t, err)
	loaded.Assets.Savings[0].Balance = "999"

	again, err := memory.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "10", again.Assets.Savings[0].Balance, "store leaked a mutable reference")
}

func TestMemoryDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	memory := store.NewMemory()

	var rec canonical.Record
	rec.Identity.FirstName = "Jane"
	require.NoError(t, memory.Save(ctx, "s1", rec))

	require.NoError(t, memory.Delete(ctx, "s1"))
	require.NoError(t, memory.Delete(ctx, "s1"))

	_, err := memory.Load(ctx, "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
