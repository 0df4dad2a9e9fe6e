package usecase

import (
	"context"

	"playpark/internal/domain/entity"
	"playpark/internal/domain/repository"
)

type ReservationUseCase struct {
	reservationRepo repository.ReservationRepository
}

func NewReservationUseCase(reservationRepo repository.ReservationRepository) *ReservationUseCase {
	return &ReservationUseCase{
		reservationRepo: reservationRepo,
	}
}

type CreateReservationInput struct {
	AdultName   string
	KidName     string
	Phone       string
	AdultAge    int
	KidAge      int
	BookingDate string
	BookingHour string
	Duration    int
	Games       []string
	Status      string
}

// CreateReservation stores a new booking. The user status is always forced to
// Good at creation time; caller input never influences it. Status defaults to
// Pending when the caller leaves it empty.
func (uc *ReservationUseCase) CreateReservation(ctx context.Context, input CreateReservationInput) (*entity.Reservation, error) {
	status := entity.ReservationStatus(input.Status)
	if input.Status == "" {
		status = entity.StatusPending
	}

	reservation := &entity.Reservation{
		AdultName:   input.AdultName,
		KidName:     input.KidName,
		Phone:       input.Phone,
		AdultAge:    input.AdultAge,
		KidAge:      input.KidAge,
		BookingDate: input.BookingDate,
		BookingHour: input.BookingHour,
		Duration:    input.Duration,
		Games:       input.Games,
		Status:      status,
		UserStatus:  entity.UserStatusGood,
	}

	if err := uc.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	return reservation, nil
}

func (uc *ReservationUseCase) ListReservations(ctx context.Context) ([]*entity.Reservation, error) {
	reservations, err := uc.reservationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []*entity.Reservation{}
	}

	return reservations, nil
}

func (uc *ReservationUseCase) UpdateStatus(ctx context.Context, id string, status string, price float64) (*entity.Reservation, error) {
	return uc.reservationRepo.UpdateStatus(ctx, id, entity.ReservationStatus(status), price)
}

func (uc *ReservationUseCase) UpdateUserStatus(ctx context.Context, id string, userStatus string) (*entity.Reservation, error) {
	return uc.reservationRepo.UpdateUserStatus(ctx, id, entity.UserStatus(userStatus))
}

func (uc *ReservationUseCase) UpdateReview(ctx context.Context, id string, review string) (*entity.Reservation, error) {
	return uc.reservationRepo.UpdateReview(ctx, id, review)
}
