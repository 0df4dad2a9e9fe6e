package router

import (
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo) {
	SetupCategoryRouter(e)
	SetupGameRouter(e)
	SetupReservationRouter(e)
	SetupHealthRouter(e)
}
