package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"playpark/internal/domain/service"
	"playpark/internal/usecase"
	"playpark/pkg/errors"
	"playpark/pkg/logger"
	"playpark/pkg/response"
)

type GameHandler struct {
	gameUseCase *usecase.GameUseCase
	fileService service.FileStorageService
	maxFileSize int64
}

func NewGameHandler(gameUseCase *usecase.GameUseCase, fileService service.FileStorageService) *GameHandler {
	return &GameHandler{
		gameUseCase: gameUseCase,
		fileService: fileService,
		maxFileSize: 5 * 1024 * 1024,
	}
}

func (h *GameHandler) CreateGame(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		logger.Error("missing image in game upload: %v", err)
		return response.Error(c, err)
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read uploaded file", err))
	}
	defer src.Close()

	imageURL, err := h.fileService.Store(c.Request().Context(), src, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		return response.Error(c, err)
	}

	var id int64
	if raw := c.FormValue("id"); raw != "" {
		id, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.Error(c, errors.Parse("id is not a valid number", err))
		}
	}

	game, err := h.gameUseCase.CreateGame(c.Request().Context(), usecase.CreateGameInput{
		ID:          id,
		Name:        c.FormValue("name"),
		ImageURL:    imageURL,
		CategoryIDs: c.FormValue("categoryIds"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, game)
}

func (h *GameHandler) ListGames(c echo.Context) error {
	games, err := h.gameUseCase.ListGames(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, games)
}

func (h *GameHandler) ListGamesByCategory(c echo.Context) error {
	categoryID := c.Param("categoryId")

	games, err := h.gameUseCase.ListGamesByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, games)
}

func (h *GameHandler) GetLastGameID(c echo.Context) error {
	lastID, err := h.gameUseCase.GetLastGameID(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int64{"lastId": lastID})
}
