package service

import (
	"context"
	"testing"

	"crowlands-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteAddIsIdempotent(t *testing.T) {
	uow := newFakeUow()
	svc := NewFavoriteService(&fakeFactory{uow: uow})
	userId := uuid.New()
	req := &dto.FavoriteRequest{ItemType: "deity", ItemId: "hecate-001"}

	require.NoError(t, svc.Add(context.Background(), userId, req))
	require.NoError(t, svc.Add(context.Background(), userId, req))

	res, err := svc.List(context.Background(), userId)
	require.NoError(t, err)
	assert.Len(t, res.Favorites, 1, "double-adding the same item keeps one entry")
}

func TestFavoriteRemove(t *testing.T) {
	uow := newFakeUow()
	svc := NewFavoriteService(&fakeFactory{uow: uow})
	userId := uuid.New()

	require.NoError(t, svc.Add(context.Background(), userId, &dto.FavoriteRequest{ItemType: "ritual", ItemId: "ritual-003"}))
	require.NoError(t, svc.Remove(context.Background(), userId, &dto.FavoriteRequest{ItemType: "ritual", ItemId: "ritual-003"}))

	res, err := svc.List(context.Background(), userId)
	require.NoError(t, err)
	assert.Empty(t, res.Favorites)
}

func TestFavoriteRemoveAbsentIsNoop(t *testing.T) {
	uow := newFakeUow()
	svc := NewFavoriteService(&fakeFactory{uow: uow})

	err := svc.Remove(context.Background(), uuid.New(), &dto.FavoriteRequest{ItemType: "site", ItemId: "nowhere-001"})

	assert.NoError(t, err, "removing an absent favorite is not an error")
}

func TestFavoriteListScopedToOwner(t *testing.T) {
	uow := newFakeUow()
	svc := NewFavoriteService(&fakeFactory{uow: uow})
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, svc.Add(context.Background(), alice, &dto.FavoriteRequest{ItemType: "deity", ItemId: "hecate-001"}))
	require.NoError(t, svc.Add(context.Background(), bob, &dto.FavoriteRequest{ItemType: "deity", ItemId: "morrigan-001"}))

	res, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, res.Favorites, 1)
	assert.Equal(t, "hecate-001", res.Favorites[0].ItemId)
}
