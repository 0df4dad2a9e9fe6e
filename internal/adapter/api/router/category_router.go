package router

import (
	"playpark/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCategoryRouter(e *echo.Echo) {
	categoryHandler := handler.GetCategoryHandler()

	e.POST("/api/categories", categoryHandler.CreateCategory)
	e.GET("/api/categories", categoryHandler.ListCategories)
}
