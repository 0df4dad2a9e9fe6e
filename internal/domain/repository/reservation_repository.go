package repository

import (
	"context"

	"playpark/internal/domain/entity"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	GetByID(ctx context.Context, id string) (*entity.Reservation, error)
	List(ctx context.Context) ([]*entity.Reservation, error)
	// The three updates below are independent partial updates: each touches
	// only its named field group and returns the full updated record.
	UpdateStatus(ctx context.Context, id string, status entity.ReservationStatus, price float64) (*entity.Reservation, error)
	UpdateUserStatus(ctx context.Context, id string, userStatus entity.UserStatus) (*entity.Reservation, error)
	UpdateReview(ctx context.Context, id string, review string) (*entity.Reservation, error)
}
