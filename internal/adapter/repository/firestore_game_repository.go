package repository

import (
	"context"
	"strconv"
	"time"

	"google.golang.org/api/iterator"

	"cloud.google.com/go/firestore"

	"playpark/internal/domain/entity"
	"playpark/internal/domain/repository"
	"playpark/pkg/errors"
)

type firestoreGameRepository struct {
	client *firestore.Client
}

func NewFirestoreGameRepository(client *firestore.Client) repository.GameRepository {
	return &firestoreGameRepository{
		client: client,
	}
}

// Game ids are numeric and caller-sequenced, so the decimal form doubles as
// the document ID.
func (r *firestoreGameRepository) Create(ctx context.Context, game *entity.Game) error {
	now := time.Now()
	if game.CreatedAt.IsZero() {
		game.CreatedAt = now
	}
	game.UpdatedAt = now

	docID := strconv.FormatInt(game.ID, 10)
	_, err := r.client.Collection("games").Doc(docID).Set(ctx, game)
	if err != nil {
		return errors.Internal("Failed to create game", err)
	}

	return nil
}

func (r *firestoreGameRepository) List(ctx context.Context) ([]*entity.Game, error) {
	query := r.client.Collection("games").OrderBy("id", firestore.Asc)
	return r.collect(ctx, query)
}

func (r *firestoreGameRepository) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Game, error) {
	query := r.client.Collection("games").Where("categoryIds", "array-contains", categoryID)
	return r.collect(ctx, query)
}

func (r *firestoreGameRepository) FindLastID(ctx context.Context) (int64, error) {
	query := r.client.Collection("games").OrderBy("id", firestore.Desc).Limit(1)
	iter := query.Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		// Empty collection is a valid zero-state, not an error
		return 0, nil
	}
	if err != nil {
		return 0, errors.Internal("Failed to query last game id", err)
	}

	var game entity.Game
	if err := doc.DataTo(&game); err != nil {
		return 0, errors.Internal("Failed to parse game data", err)
	}

	return game.ID, nil
}

func (r *firestoreGameRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Game, error) {
	iter := query.Documents(ctx)
	var games []*entity.Game

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate games", err)
		}

		var game entity.Game
		if err := doc.DataTo(&game); err != nil {
			return nil, errors.Internal("Failed to parse game data", err)
		}
		games = append(games, &game)
	}

	return games, nil
}
