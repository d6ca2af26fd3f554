package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/hotel-service/hotel/internal/errs"
	"github.com/Astemirdum/hotel-service/hotel/internal/model"
	repo_mocks "github.com/Astemirdum/hotel-service/hotel/internal/repository/mocks"
	"github.com/Astemirdum/hotel-service/hotel/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name               string
		existArr, existDep time.Time
		reqArr, reqDep     time.Time
		want               bool
	}{
		{
			name:     "disjoint before",
			existArr: date(2025, 6, 1), existDep: date(2025, 6, 5),
			reqArr: date(2025, 6, 10), reqDep: date(2025, 6, 12),
			want: false,
		},
		{
			name:     "disjoint after",
			existArr: date(2025, 6, 20), existDep: date(2025, 6, 25),
			reqArr: date(2025, 6, 10), reqDep: date(2025, 6, 12),
			want: false,
		},
		{
			name:     "back-to-back: existing departs on requested arrival",
			existArr: date(2025, 6, 15), existDep: date(2025, 6, 18),
			reqArr: date(2025, 6, 18), reqDep: date(2025, 6, 20),
			want: false,
		},
		{
			name:     "back-to-back: existing arrives on requested departure",
			existArr: date(2025, 6, 18), existDep: date(2025, 6, 20),
			reqArr: date(2025, 6, 15), reqDep: date(2025, 6, 18),
			want: false,
		},
		{
			name:     "partial overlap at start",
			existArr: date(2025, 6, 15), existDep: date(2025, 6, 18),
			reqArr: date(2025, 6, 17), reqDep: date(2025, 6, 20),
			want: true,
		},
		{
			name:     "partial overlap at end",
			existArr: date(2025, 6, 15), existDep: date(2025, 6, 18),
			reqArr: date(2025, 6, 12), reqDep: date(2025, 6, 16),
			want: true,
		},
		{
			name:     "requested contains existing",
			existArr: date(2025, 6, 15), existDep: date(2025, 6, 18),
			reqArr: date(2025, 6, 10), reqDep: date(2025, 6, 25),
			want: true,
		},
		{
			name:     "existing contains requested",
			existArr: date(2025, 6, 10), existDep: date(2025, 6, 25),
			reqArr: date(2025, 6, 15), reqDep: date(2025, 6, 18),
			want: true,
		},
		{
			name:     "identical intervals",
			existArr: date(2025, 6, 15), existDep: date(2025, 6, 18),
			reqArr: date(2025, 6, 15), reqDep: date(2025, 6, 18),
			want: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, service.Overlaps(tt.existArr, tt.existDep, tt.reqArr, tt.reqDep))
		})
	}
}

func TestService_FindAvailableRooms(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, zap.NewExample().Named("test"))

	rooms := []model.AvailableRoom{
		{ID: 8, Number: 101, Floor: 1, City: "Paris", Label: "Simple", Rate: 80},
		{ID: 1, Number: 201, Floor: 2, City: "Paris", Label: "Simple", Rate: 80},
	}
	repo.EXPECT().
		FindAvailableRooms(context.Background(), date(2025, 6, 15), date(2025, 6, 18)).
		Return(rooms, nil)

	got, err := svc.FindAvailableRooms(context.Background(), date(2025, 6, 15), date(2025, 6, 18))
	require.NoError(t, err)
	require.Equal(t, rooms, got)
}

func TestService_FindAvailableRooms_InvalidRange(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, zap.NewExample().Named("test"))

	// no repo expectations: an invalid range must not reach storage
	_, err := svc.FindAvailableRooms(context.Background(), date(2025, 6, 18), date(2025, 6, 15))
	require.ErrorIs(t, err, errs.ErrInvalidDateRange)

	_, err = svc.FindAvailableRooms(context.Background(), date(2025, 6, 15), date(2025, 6, 15))
	require.ErrorIs(t, err, errs.ErrInvalidDateRange)
}

func TestService_CreateReservation(t *testing.T) {
	t.Parallel()
	newReq := func() model.CreateReservationRequest {
		return model.CreateReservationRequest{
			ClientID:      1,
			ArrivalDate:   model.Date{Time: date(2025, 6, 15)},
			DepartureDate: model.Date{Time: date(2025, 6, 18)},
			RoomIDs:       []int{1, 6},
		}
	}
	type mockBehavior func(r *repo_mocks.MockRepository, req model.CreateReservationRequest)

	var tests = []struct {
		name         string
		mutate       func(req *model.CreateReservationRequest)
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name:   "ok",
			mutate: func(req *model.CreateReservationRequest) {},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {
				r.EXPECT().
					CreateReservation(context.Background(), req).
					Return(model.Reservation{ID: 9, ClientID: 1}, nil)
			},
		},
		{
			name: "empty rooms never reaches storage",
			mutate: func(req *model.CreateReservationRequest) {
				req.RoomIDs = nil
			},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {},
			wantErr:      errs.ErrNoRoomsSelected,
		},
		{
			name: "departure before arrival never reaches storage",
			mutate: func(req *model.CreateReservationRequest) {
				req.ArrivalDate, req.DepartureDate = req.DepartureDate, req.ArrivalDate
			},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {},
			wantErr:      errs.ErrInvalidDateRange,
		},
		{
			name: "zero-night stay never reaches storage",
			mutate: func(req *model.CreateReservationRequest) {
				req.DepartureDate = req.ArrivalDate
			},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {},
			wantErr:      errs.ErrInvalidDateRange,
		},
		{
			name:   "unknown client",
			mutate: func(req *model.CreateReservationRequest) {},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {
				r.EXPECT().
					CreateReservation(context.Background(), req).
					Return(model.Reservation{}, errors.Wrap(errs.ErrNotFound, "reservation_client_id_fkey"))
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			svc := service.NewService(repo, zap.NewExample().Named("test"))

			req := newReq()
			tt.mutate(&req)
			tt.mockBehavior(repo, req)

			_, err := svc.CreateReservation(context.Background(), req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
