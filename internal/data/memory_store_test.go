package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewSeededMemoryStore()

	user, err := store.GetUser(ctx, 1)
	require.NoError(t, err)
	user.Forename = "Mutated"
	*user.DateOfBirth = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

	stored, err := store.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Peter", stored.Forename)
	assert.Equal(t, 1988, stored.DateOfBirth.Year())
}

func TestMemoryStoreDiscardsFailedTransaction(t *testing.T) {
	ctx := context.Background()
	store := NewSeededMemoryStore()

	err := store.RunInTx(ctx, func(ctx context.Context, tx StoreTx) error {
		require.NoError(t, tx.DeleteUser(ctx, 1))
		require.NoError(t, tx.InsertAuditLogs(ctx, []*AuditLog{{UserID: 1, ActionType: ActionDelete}}))
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = store.GetUser(ctx, 1)
	assert.NoError(t, err)
	_, total, err := store.ListAuditLogs(ctx, AuditLogQuery{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestMemoryStoreAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := NewSeededMemoryStore()

	first := &User{Forename: "A", Surname: "B", Email: "a@example.com"}
	second := &User{Forename: "C", Surname: "D", Email: "c@example.com"}
	err := store.RunInTx(ctx, func(ctx context.Context, tx StoreTx) error {
		if err := tx.InsertUser(ctx, first); err != nil {
			return err
		}
		return tx.InsertUser(ctx, second)
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12), first.ID)
	assert.Equal(t, int64(13), second.ID)
}

func TestChangeTrackerAcceptChanges(t *testing.T) {
	tracker := NewChangeTracker()
	kept := tracker.Add(&User{ID: 1})
	removed := tracker.Remove(&User{ID: 2})
	tracker.AddAuditLogs(&AuditLog{UserID: 1})

	require.True(t, tracker.HasChanges())
	tracker.AcceptChanges()

	assert.False(t, tracker.HasChanges())
	assert.Equal(t, StateUnchanged, kept.State)
	assert.Equal(t, int64(1), kept.Original.ID)
	assert.Equal(t, StateDetached, removed.State)
	assert.Len(t, tracker.Entries(), 1)
	assert.Empty(t, tracker.PendingAuditLogs())
	assert.Equal(t, "Unchanged", kept.State.String())
}
