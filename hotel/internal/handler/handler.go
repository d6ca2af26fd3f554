package handler

import (
	"net/http"
	"time"

	md "github.com/Astemirdum/hotel-service/pkg/middleware"

	"github.com/Astemirdum/hotel-service/hotel/internal/errs"
	"github.com/Astemirdum/hotel-service/hotel/internal/model"
	"github.com/Astemirdum/hotel-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	hotelSvc HotelService
	log      *zap.Logger
}

func New(hotelSvc HotelService, log *zap.Logger) *Handler {
	h := &Handler{
		hotelSvc: hotelSvc,
		log:      log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/rooms/available", h.GetAvailableRooms)
	api.GET("/reservations", h.GetReservations)
	api.POST("/reservations", h.CreateReservation)
	api.GET("/clients", h.GetClients)
	api.POST("/clients", h.CreateClient)
	api.GET("/reviews", h.GetReviews)
	api.POST("/reviews", h.CreateReview)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetAvailableRooms(c echo.Context) error {
	arrival, err := dateQueryParam(c, "arrival")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	departure, err := dateQueryParam(c, "departure")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rooms, err := h.hotelSvc.FindAvailableRooms(c.Request().Context(), arrival, departure)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidDateRange) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	res, err := h.hotelSvc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoRoomsSelected), errors.Is(err, errs.ErrInvalidDateRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) GetReservations(c echo.Context) error {
	items, err := h.hotelSvc.ListReservations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetClients(c echo.Context) error {
	items, err := h.hotelSvc.ListClients(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateClient(c echo.Context) error {
	var req model.CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	client, err := h.hotelSvc.CreateClient(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, client)
}

func (h *Handler) GetReviews(c echo.Context) error {
	items, err := h.hotelSvc.ListReviews(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateReview(c echo.Context) error {
	var req model.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	review, err := h.hotelSvc.CreateReview(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, review)
}

func dateQueryParam(c echo.Context, name string) (time.Time, error) {
	param := c.QueryParam(name)
	if param == "" {
		return time.Time{}, errors.Errorf("%s is required", name)
	}
	t, err := time.Parse(time.DateOnly, param)
	if err != nil {
		return time.Time{}, errors.Errorf("%s must be YYYY-MM-DD", name)
	}
	return t, nil
}
