package router

import (
	"playpark/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupGameRouter(e *echo.Echo) {
	gameHandler := handler.GetGameHandler()

	e.POST("/api/games", gameHandler.CreateGame)
	e.GET("/api/games", gameHandler.ListGames)
	// last-id must be registered alongside the :categoryId route; echo gives
	// the static segment priority
	e.GET("/api/games/last-id", gameHandler.GetLastGameID)
	e.GET("/api/games/category/:categoryId", gameHandler.ListGamesByCategory)
}
