package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	items       []*Item
	searchCalls int
}

func (r *stubRepository) GetByID(_ context.Context, id int64) (*Item, error) {
	for _, i := range r.items {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, ErrNotFound
}

func (r *stubRepository) ListByOwner(_ context.Context, ownerID int64) ([]*Item, error) {
	var out []*Item
	for _, i := range r.items {
		if i.OwnerID == ownerID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *stubRepository) Search(_ context.Context, _ string) ([]*Item, error) {
	r.searchCalls++
	return r.items, nil
}

func TestSearchBlankText(t *testing.T) {
	repo := &stubRepository{items: []*Item{{ID: 1, Name: "drill", Available: true}}}
	svc := NewService(repo)

	for _, text := range []string{"", "   "} {
		got, err := svc.Search(context.Background(), text)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
	assert.Zero(t, repo.searchCalls, "blank text should not reach storage")
}

func TestGetByID(t *testing.T) {
	repo := &stubRepository{items: []*Item{{ID: 1, Name: "drill", OwnerID: 10, Available: true}}}
	svc := NewService(repo)

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "drill", got.Name)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNotFound)
}
