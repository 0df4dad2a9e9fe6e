package repository

import (
	"context"

	"playpark/internal/domain/entity"
)

type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	List(ctx context.Context) ([]*entity.Game, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.Game, error)
	// FindLastID returns the highest numeric game id, or 0 when the
	// collection is empty.
	FindLastID(ctx context.Context) (int64, error)
}
