package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

func TestHotelService(t *testing.T) {
	ctx := context.Background()

	newSvc := func() (*HotelService, *fakeStore) {
		store := newFakeStore()
		return NewHotelService(NewEntitlementResolver(store, store), store), store
	}

	t.Run("lists hotels for entitled user", func(t *testing.T) {
		svc, store := newSvc()
		store.givenUser("u1", model.TicketStatusPaid, false, true)
		store.hotels = []model.Hotel{{ID: "h1", Name: "Resort"}}

		hotels, err := svc.ListHotels(ctx, "u1")

		require.NoError(t, err)
		assert.Len(t, hotels, 1)
	})

	t.Run("empty catalog is not found", func(t *testing.T) {
		svc, store := newSvc()
		store.givenUser("u1", model.TicketStatusPaid, false, true)

		_, err := svc.ListHotels(ctx, "u1")

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("ticket without lodging requires payment", func(t *testing.T) {
		svc, store := newSvc()
		store.givenUser("u1", model.TicketStatusReserved, false, true)
		store.hotels = []model.Hotel{{ID: "h1"}}

		_, err := svc.ListHotels(ctx, "u1")
		assert.ErrorIs(t, err, model.ErrPaymentRequired)

		_, err = svc.GetHotel(ctx, "u1", "h1")
		assert.ErrorIs(t, err, model.ErrPaymentRequired)
	})

	t.Run("user without enrollment is not found", func(t *testing.T) {
		svc, _ := newSvc()

		_, err := svc.ListHotels(ctx, "nobody")

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("gets hotel with rooms", func(t *testing.T) {
		svc, store := newSvc()
		store.givenUser("u1", model.TicketStatusPaid, false, true)
		store.hotels = []model.Hotel{{ID: "h1", Rooms: []model.Room{{ID: "r1", Capacity: 2}}}}

		h, err := svc.GetHotel(ctx, "u1", "h1")
		require.NoError(t, err)
		assert.Len(t, h.Rooms, 1)

		_, err = svc.GetHotel(ctx, "u1", "h2")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
