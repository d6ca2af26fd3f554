package handler

import (
	"context"
	"time"

	"github.com/Astemirdum/hotel-service/hotel/internal/model"
	"github.com/Astemirdum/hotel-service/hotel/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type HotelService interface {
	FindAvailableRooms(ctx context.Context, arrival, departure time.Time) ([]model.AvailableRoom, error)
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	ListReservations(ctx context.Context) ([]model.ReservationInfo, error)
	ListClients(ctx context.Context) ([]model.Client, error)
	CreateClient(ctx context.Context, req model.CreateClientRequest) (model.Client, error)
	ListReviews(ctx context.Context) ([]model.Review, error)
	CreateReview(ctx context.Context, req model.CreateReviewRequest) (model.Review, error)
}

var _ HotelService = (*service.Service)(nil)
