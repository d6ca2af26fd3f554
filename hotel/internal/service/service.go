package service

import (
	"context"
	"time"

	"github.com/Astemirdum/hotel-service/hotel/internal/errs"
	"github.com/Astemirdum/hotel-service/hotel/internal/model"
	"github.com/Astemirdum/hotel-service/hotel/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

// Overlaps reports whether the half-open stay intervals
// [existingArrival, existingDeparture) and [arrival, departure) intersect.
// Back-to-back checkout/checkin on the same day does not overlap.
// The availability query in the repository expresses the same predicate in SQL.
func Overlaps(existingArrival, existingDeparture, arrival, departure time.Time) bool {
	return existingArrival.Before(departure) && arrival.Before(existingDeparture)
}

func (s *Service) FindAvailableRooms(ctx context.Context, arrival, departure time.Time) ([]model.AvailableRoom, error) {
	if !arrival.Before(departure) {
		return nil, errs.ErrInvalidDateRange
	}
	return s.repo.FindAvailableRooms(ctx, arrival, departure)
}

// CreateReservation persists one reservation linked to every selected room.
// Availability is not re-checked here: the caller is expected to pass room ids
// from a fresh FindAvailableRooms result.
func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	if len(req.RoomIDs) == 0 {
		return model.Reservation{}, errs.ErrNoRoomsSelected
	}
	if !req.ArrivalDate.Before(req.DepartureDate.Time) {
		return model.Reservation{}, errs.ErrInvalidDateRange
	}
	return s.repo.CreateReservation(ctx, req)
}

func (s *Service) ListReservations(ctx context.Context) ([]model.ReservationInfo, error) {
	return s.repo.ListReservations(ctx)
}

func (s *Service) ListClients(ctx context.Context) ([]model.Client, error) {
	return s.repo.ListClients(ctx)
}

func (s *Service) CreateClient(ctx context.Context, req model.CreateClientRequest) (model.Client, error) {
	return s.repo.CreateClient(ctx, req)
}

func (s *Service) ListReviews(ctx context.Context) ([]model.Review, error) {
	return s.repo.ListReviews(ctx)
}

func (s *Service) CreateReview(ctx context.Context, req model.CreateReviewRequest) (model.Review, error) {
	return s.repo.CreateReview(ctx, req)
}
