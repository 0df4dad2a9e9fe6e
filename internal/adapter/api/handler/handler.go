package handler

import (
	"playpark/internal/domain/service"
	"playpark/internal/usecase"
)

var (
	categoryHandler    *CategoryHandler
	gameHandler        *GameHandler
	reservationHandler *ReservationHandler
	healthHandler      *HealthHandler
)

func Setup(
	categoryUseCase *usecase.CategoryUseCase,
	gameUseCase *usecase.GameUseCase,
	reservationUseCase *usecase.ReservationUseCase,
	fileService service.FileStorageService,
) {
	categoryHandler = NewCategoryHandler(categoryUseCase)
	gameHandler = NewGameHandler(gameUseCase, fileService)
	reservationHandler = NewReservationHandler(reservationUseCase)
	healthHandler = NewHealthHandler()
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetGameHandler() *GameHandler {
	return gameHandler
}

func GetReservationHandler() *ReservationHandler {
	return reservationHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
