package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Astemirdum/hotel-service/hotel/internal/errs"
	"github.com/Astemirdum/hotel-service/hotel/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	ListReservations(ctx context.Context) ([]model.ReservationInfo, error)
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	FindAvailableRooms(ctx context.Context, arrival, departure time.Time) ([]model.AvailableRoom, error)
	ListClients(ctx context.Context) ([]model.Client, error)
	CreateClient(ctx context.Context, req model.CreateClientRequest) (model.Client, error)
	ListReviews(ctx context.Context) ([]model.Review, error)
	CreateReview(ctx context.Context, req model.CreateReviewRequest) (model.Review, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	clientTableName          = `client`
	reservationTableName     = `reservation`
	roomReservationTableName = `room_reservation`
	reviewTableName          = `review`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// FindAvailableRooms returns rooms with no reservation overlapping the
// half-open interval [arrival, departure). A reservation departing on the
// requested arrival day (or arriving on the departure day) does not conflict.
func (r *repository) FindAvailableRooms(ctx context.Context, arrival, departure time.Time) ([]model.AvailableRoom, error) {
	const q = `
	select rm.id, rm.number, rm.floor, rm.smoking, h.city, t.label, t.rate
	from room rm
	join hotel h on h.id = rm.hotel_id
	join room_type t on t.id = rm.room_type_id
	where rm.id not in (
		select rr.room_id
		from room_reservation rr
		join reservation res on res.id = rr.reservation_id
		where res.arrival_date < $2 and $1 < res.departure_date
	)
	order by rm.number`

	rooms := make([]model.AvailableRoom, 0)
	if err := r.db.SelectContext(ctx, &rooms, q, arrival, departure); err != nil {
		r.log.Error("FindAvailableRooms", zap.Error(err))
		return nil, err
	}
	return rooms, nil
}

// CreateReservation inserts the reservation and its room links in one
// transaction. Any failure rolls the whole unit back.
func (r *repository) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Reservation{}, errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback() //nolint:errcheck

	q, args, err := qb.Insert(reservationTableName).
		Columns("reservation_uid", "arrival_date", "departure_date", "client_id").
		Values(uuid.New(), req.ArrivalDate.Time, req.DepartureDate.Time, req.ClientID).
		Suffix("returning id, reservation_uid, arrival_date, departure_date, client_id").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := tx.GetContext(ctx, &res, q, args...); err != nil {
		r.log.Error("CreateReservation", zap.String("q", q), zap.Any("args", args))
		return model.Reservation{}, constraintErr(err)
	}

	ins := qb.Insert(roomReservationTableName).Columns("room_id", "reservation_id")
	for _, roomID := range req.RoomIDs {
		ins = ins.Values(roomID, res.ID)
	}
	q, args, err = ins.ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("CreateReservation link rooms", zap.String("q", q), zap.Any("args", args))
		return model.Reservation{}, constraintErr(err)
	}

	if err := tx.Commit(); err != nil {
		return model.Reservation{}, errors.Wrap(err, "commit tx")
	}
	return res, nil
}

func (r *repository) ListReservations(ctx context.Context) ([]model.ReservationInfo, error) {
	const q = `
	select res.id, c.full_name, h.city, res.arrival_date, res.departure_date
	from reservation res
	join client c on c.id = res.client_id
	join room_reservation rr on rr.reservation_id = res.id
	join room rm on rm.id = rr.room_id
	join hotel h on h.id = rm.hotel_id
	order by res.arrival_date desc`

	items := make([]model.ReservationInfo, 0)
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListClients(ctx context.Context) ([]model.Client, error) {
	q, args, err := qb.Select("id", "full_name", "address", "city", "postal_code", "email", "phone").
		From(clientTableName).
		OrderBy("full_name").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Client, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateClient(ctx context.Context, req model.CreateClientRequest) (model.Client, error) {
	q, args, err := qb.Insert(clientTableName).
		Columns("full_name", "address", "city", "postal_code", "email", "phone").
		Values(req.FullName, req.Address, req.City, req.PostalCode, req.Email, req.Phone).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Client{}, err
	}
	var client model.Client
	if err := r.db.GetContext(ctx, &client, q, args...); err != nil {
		r.log.Error("CreateClient", zap.String("q", q), zap.Any("args", args))
		return model.Client{}, err
	}
	return client, nil
}

func (r *repository) ListReviews(ctx context.Context) ([]model.Review, error) {
	q, args, err := qb.Select("id", "date", "rating", "comment", "client_id").
		From(reviewTableName).
		OrderBy("date desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Review, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateReview(ctx context.Context, req model.CreateReviewRequest) (model.Review, error) {
	q, args, err := qb.Insert(reviewTableName).
		Columns("date", "rating", "comment", "client_id").
		Values(req.Date.Time, req.Rating, req.Comment, req.ClientID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Review{}, err
	}
	var review model.Review
	if err := r.db.GetContext(ctx, &review, q, args...); err != nil {
		r.log.Error("CreateReview", zap.String("q", q), zap.Any("args", args))
		return model.Review{}, constraintErr(err)
	}
	return review, nil
}

// constraintErr maps postgres constraint violations to the error taxonomy.
// A foreign key violation means a referenced client or room does not exist.
func constraintErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		if pgErr.Code == pgerrcode.ForeignKeyViolation {
			return errors.Wrap(errs.ErrNotFound, pgErr.ConstraintName)
		}
		return errors.Wrap(err, "constraint violation")
	}
	return err
}
