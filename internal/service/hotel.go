package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// HotelService lets entitled users browse hotels and rooms.
type HotelService struct {
	entitlements *EntitlementResolver
	hotels       HotelStore
}

// NewHotelService constructs a HotelService.
func NewHotelService(entitlements *EntitlementResolver, hotels HotelStore) *HotelService {
	return &HotelService{entitlements: entitlements, hotels: hotels}
}

// ListHotels returns every hotel. Users whose ticket does not include
// lodging get PaymentRequired; an empty catalog is NotFound.
func (s *HotelService) ListHotels(ctx context.Context, userID string) (hotels []model.Hotel, err error) {
	ctx, span := startSpan(ctx, "hotel.list", attribute.String("user.id", userID))
	defer func() { endSpan(span, err) }()

	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}
	hotels, err = s.hotels.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, model.NotFound("no hotels available")
	}
	return hotels, nil
}

// GetHotel returns one hotel with its rooms and their occupants.
func (s *HotelService) GetHotel(ctx context.Context, userID, hotelID string) (hotel *model.Hotel, err error) {
	ctx, span := startSpan(ctx, "hotel.get",
		attribute.String("user.id", userID),
		attribute.String("hotel.id", hotelID),
	)
	defer func() { endSpan(span, err) }()

	if err := s.gate(ctx, userID); err != nil {
		return nil, err
	}
	return s.hotels.FindWithRooms(ctx, hotelID)
}

func (s *HotelService) gate(ctx context.Context, userID string) error {
	ent, err := s.entitlements.Resolve(ctx, userID)
	if err != nil {
		return err
	}
	if !allowsLodging(ent) {
		return model.PaymentRequired("ticket does not include lodging")
	}
	return nil
}
