package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"playpark/internal/domain/entity"
	"playpark/pkg/errors"
)

// In-memory repository fakes mirroring the contracts of the Firestore
// implementations, including enum enforcement on every write.

type fakeCategoryRepo struct {
	categories []*entity.Category
	seq        int
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		f.seq++
		category.ID = fmt.Sprintf("cat-%d", f.seq)
	}
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	for _, category := range f.categories {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	return f.categories, nil
}

type fakeGameRepo struct {
	games []*entity.Game
}

func (f *fakeGameRepo) Create(ctx context.Context, game *entity.Game) error {
	f.games = append(f.games, game)
	return nil
}

func (f *fakeGameRepo) List(ctx context.Context) ([]*entity.Game, error) {
	return f.games, nil
}

func (f *fakeGameRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Game, error) {
	var matches []*entity.Game
	for _, game := range f.games {
		for _, id := range game.CategoryIDs {
			if id == categoryID {
				matches = append(matches, game)
				break
			}
		}
	}
	return matches, nil
}

func (f *fakeGameRepo) FindLastID(ctx context.Context) (int64, error) {
	var last int64
	for _, game := range f.games {
		if game.ID > last {
			last = game.ID
		}
	}
	return last, nil
}

type fakeReservationRepo struct {
	reservations map[string]*entity.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[string]*entity.Reservation)}
}

func (f *fakeReservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	if err := reservation.Validate(); err != nil {
		return errors.Validation("Reservation has an invalid enumerated field", err)
	}
	if reservation.ID == "" {
		reservation.ID = uuid.New().String()
	}
	f.reservations[reservation.ID] = reservation
	return nil
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (*entity.Reservation, error) {
	reservation, ok := f.reservations[id]
	if !ok {
		return nil, errors.NotFound("Reservation", nil)
	}
	return reservation, nil
}

func (f *fakeReservationRepo) List(ctx context.Context) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	for _, reservation := range f.reservations {
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id string, status entity.ReservationStatus, price float64) (*entity.Reservation, error) {
	if !status.Valid() {
		return nil, errors.Validation("Reservation status must be one of Pending, Cancelled, Completed", nil)
	}
	reservation, ok := f.reservations[id]
	if !ok {
		return nil, errors.NotFound("Reservation", nil)
	}
	reservation.Status = status
	reservation.Price = price
	return reservation, nil
}

func (f *fakeReservationRepo) UpdateUserStatus(ctx context.Context, id string, userStatus entity.UserStatus) (*entity.Reservation, error) {
	if !userStatus.Valid() {
		return nil, errors.Validation("User status must be one of Good, Bad", nil)
	}
	reservation, ok := f.reservations[id]
	if !ok {
		return nil, errors.NotFound("Reservation", nil)
	}
	reservation.UserStatus = userStatus
	return reservation, nil
}

func (f *fakeReservationRepo) UpdateReview(ctx context.Context, id string, review string) (*entity.Reservation, error) {
	reservation, ok := f.reservations[id]
	if !ok {
		return nil, errors.NotFound("Reservation", nil)
	}
	reservation.Review = review
	return reservation, nil
}
