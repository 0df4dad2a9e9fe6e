package handler

import (
	"github.com/labstack/echo/v4"

	"playpark/internal/usecase"
	"playpark/pkg/response"
)

type ReservationHandler struct {
	reservationUseCase *usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase *usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// userStatus is deliberately absent: the server forces it to Good at creation
// no matter what the caller sends.
type createReservationRequest struct {
	AdultName   string   `json:"adultName"`
	KidName     string   `json:"kidName"`
	Phone       string   `json:"phone"`
	AdultAge    int      `json:"adultAge"`
	KidAge      int      `json:"kidAge"`
	BookingDate string   `json:"bookingDate"`
	BookingHour string   `json:"bookingHour"`
	Duration    int      `json:"duration"`
	Games       []string `json:"games"`
	Status      string   `json:"status"`
}

type updateStatusRequest struct {
	Status string  `json:"status"`
	Price  float64 `json:"price"`
}

type updateUserStatusRequest struct {
	UserStatus string `json:"userStatus"`
}

type updateReviewRequest struct {
	Review string `json:"review"`
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	reservation, err := h.reservationUseCase.CreateReservation(c.Request().Context(), usecase.CreateReservationInput{
		AdultName:   req.AdultName,
		KidName:     req.KidName,
		Phone:       req.Phone,
		AdultAge:    req.AdultAge,
		KidAge:      req.KidAge,
		BookingDate: req.BookingDate,
		BookingHour: req.BookingHour,
		Duration:    req.Duration,
		Games:       req.Games,
		Status:      req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, reservation)
}

func (h *ReservationHandler) ListReservations(c echo.Context) error {
	reservations, err := h.reservationUseCase.ListReservations(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reservations)
}

func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	reservation, err := h.reservationUseCase.UpdateStatus(c.Request().Context(), id, req.Status, req.Price)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reservation)
}

func (h *ReservationHandler) UpdateUserStatus(c echo.Context) error {
	id := c.Param("id")

	var req updateUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	reservation, err := h.reservationUseCase.UpdateUserStatus(c.Request().Context(), id, req.UserStatus)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reservation)
}

func (h *ReservationHandler) UpdateReview(c echo.Context) error {
	id := c.Param("id")

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	reservation, err := h.reservationUseCase.UpdateReview(c.Request().Context(), id, req.Review)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reservation)
}
