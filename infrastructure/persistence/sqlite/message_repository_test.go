package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuyka38/mijawharati-sub000/domain/inbox"
)

func TestMessageRoundTripAndEdit(t *testing.T) {
	repo := NewMessageRepository(openTestDB(t))
	ctx := context.Background()

	m := inbox.NewMessage("Amina", "amina@example.com", "Custom order", "Do you make earrings?")
	require.NoError(t, repo.Insert(ctx, m))
	assert.False(t, m.IsNew())

	loaded, err := repo.FindByID(ctx, m.ID())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Amina", loaded.Name())
	assert.Equal(t, "Custom order", loaded.Subject())

	loaded.Edit("Amina", "amina@example.com", "Custom order", "Matching earrings, please.")
	require.NoError(t, repo.Update(ctx, loaded))

	reloaded, err := repo.FindByID(ctx, m.ID())
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, m.ID(), reloaded.ID(), "edit keeps the identity")
	assert.Equal(t, "Matching earrings, please.", reloaded.Body())

	all, err := repo.FindAllNewestFirst(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "edit never creates a second record")
}

func TestMessageFindByIDAbsentIsNilNotError(t *testing.T) {
	repo := NewMessageRepository(openTestDB(t))

	loaded, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMessageDeleteAbsentIsNoOp(t *testing.T) {
	repo := NewMessageRepository(openTestDB(t))
	require.NoError(t, repo.Delete(context.Background(), 42))
}

func TestMessagesNewestFirst(t *testing.T) {
	repo := NewMessageRepository(openTestDB(t))
	ctx := context.Background()

	first := inbox.NewMessage("A", "a@example.com", "first", "")
	second := inbox.NewMessage("B", "b@example.com", "second", "")
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	all, err := repo.FindAllNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Subject())
	assert.Equal(t, "first", all[1].Subject())
}
