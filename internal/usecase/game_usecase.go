package usecase

import (
	"context"
	"encoding/json"

	"playpark/internal/domain/entity"
	"playpark/internal/domain/repository"
	"playpark/pkg/errors"
	"playpark/pkg/logger"
)

type GameUseCase struct {
	gameRepo     repository.GameRepository
	categoryRepo repository.CategoryRepository
}

func NewGameUseCase(gameRepo repository.GameRepository, categoryRepo repository.CategoryRepository) *GameUseCase {
	return &GameUseCase{
		gameRepo:     gameRepo,
		categoryRepo: categoryRepo,
	}
}

type CreateGameInput struct {
	ID       int64
	Name     string
	ImageURL string
	// CategoryIDs arrives as a JSON-encoded array in a multipart form field
	CategoryIDs string
}

type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GameDetail is a game with its category references expanded for display.
type GameDetail struct {
	*entity.Game
	Categories []CategorySummary `json:"categories"`
}

func (uc *GameUseCase) CreateGame(ctx context.Context, input CreateGameInput) (*entity.Game, error) {
	var categoryIDs []string
	if err := json.Unmarshal([]byte(input.CategoryIDs), &categoryIDs); err != nil {
		return nil, errors.Parse("categoryIds is not a valid JSON array", err)
	}

	id := input.ID
	if id == 0 {
		lastID, err := uc.gameRepo.FindLastID(ctx)
		if err != nil {
			return nil, err
		}
		id = lastID + 1
	}

	game := &entity.Game{
		ID:          id,
		Name:        input.Name,
		ImageURL:    input.ImageURL,
		CategoryIDs: categoryIDs,
	}

	if err := uc.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// ListGames expands each game's category ids into {id, name} pairs. Dangling
// references are skipped rather than failing the listing: nothing prevents a
// game from pointing at a category that no longer exists.
func (uc *GameUseCase) ListGames(ctx context.Context) ([]GameDetail, error) {
	games, err := uc.gameRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]GameDetail, 0, len(games))
	for _, game := range games {
		detail := GameDetail{Game: game, Categories: []CategorySummary{}}
		for _, categoryID := range game.CategoryIDs {
			category, err := uc.categoryRepo.GetByID(ctx, categoryID)
			if err != nil {
				if errors.Is(err, "NOT_FOUND") {
					logger.Warn("game %d references missing category %s", game.ID, categoryID)
					continue
				}
				return nil, err
			}
			detail.Categories = append(detail.Categories, CategorySummary{
				ID:   category.ID,
				Name: category.Name,
			})
		}
		details = append(details, detail)
	}

	return details, nil
}

// ListGamesByCategory reports an empty result as NotFound rather than an
// empty list.
func (uc *GameUseCase) ListGamesByCategory(ctx context.Context, categoryID string) ([]*entity.Game, error) {
	games, err := uc.gameRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, errors.NotFound("Games for category", nil)
	}

	return games, nil
}

func (uc *GameUseCase) GetLastGameID(ctx context.Context) (int64, error) {
	return uc.gameRepo.FindLastID(ctx)
}
