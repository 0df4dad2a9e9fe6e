package router

import (
	"playpark/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupReservationRouter(e *echo.Echo) {
	reservationHandler := handler.GetReservationHandler()

	e.POST("/api/reservations", reservationHandler.CreateReservation)
	e.GET("/api/reservations", reservationHandler.ListReservations)
	e.PATCH("/api/reservations/:id/status", reservationHandler.UpdateStatus)
	e.PATCH("/api/reservations/:id/userstatus", reservationHandler.UpdateUserStatus)
	e.PATCH("/api/reservations/:id/review", reservationHandler.UpdateReview)
}
