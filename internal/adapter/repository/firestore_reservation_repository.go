package repository

import (
	"context"
	"time"

	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"playpark/internal/domain/entity"
	"playpark/internal/domain/repository"
	"playpark/pkg/errors"
)

type firestoreReservationRepository struct {
	client *firestore.Client
}

func NewFirestoreReservationRepository(client *firestore.Client) repository.ReservationRepository {
	return &firestoreReservationRepository{
		client: client,
	}
}

func (r *firestoreReservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	// Enum fields are enforced here, at the persistence boundary, so the
	// constraint holds no matter which store backs the repository.
	if err := reservation.Validate(); err != nil {
		return errors.Validation("Reservation has an invalid enumerated field", err)
	}

	if reservation.ID == "" {
		reservation.ID = uuid.New().String()
	}

	now := time.Now()
	reservation.CreatedAt = now
	reservation.UpdatedAt = now

	_, err := r.client.Collection("reservations").Doc(reservation.ID).Set(ctx, reservation)
	if err != nil {
		return errors.Internal("Failed to create reservation", err)
	}

	return nil
}

func (r *firestoreReservationRepository) GetByID(ctx context.Context, id string) (*entity.Reservation, error) {
	doc, err := r.client.Collection("reservations").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Reservation", err)
		}
		return nil, errors.Internal("Failed to get reservation", err)
	}

	var reservation entity.Reservation
	if err := doc.DataTo(&reservation); err != nil {
		return nil, errors.Internal("Failed to parse reservation data", err)
	}

	return &reservation, nil
}

func (r *firestoreReservationRepository) List(ctx context.Context) ([]*entity.Reservation, error) {
	iter := r.client.Collection("reservations").OrderBy("createdAt", firestore.Desc).Documents(ctx)
	var reservations []*entity.Reservation

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reservations", err)
		}

		var reservation entity.Reservation
		if err := doc.DataTo(&reservation); err != nil {
			return nil, errors.Internal("Failed to parse reservation data", err)
		}
		reservations = append(reservations, &reservation)
	}

	return reservations, nil
}

func (r *firestoreReservationRepository) UpdateStatus(ctx context.Context, id string, reservationStatus entity.ReservationStatus, price float64) (*entity.Reservation, error) {
	if !reservationStatus.Valid() {
		return nil, errors.Validation("Reservation status must be one of Pending, Cancelled, Completed", nil)
	}

	return r.applyUpdate(ctx, id, []firestore.Update{
		{Path: "status", Value: reservationStatus},
		{Path: "price", Value: price},
		{Path: "updatedAt", Value: time.Now()},
	})
}

func (r *firestoreReservationRepository) UpdateUserStatus(ctx context.Context, id string, userStatus entity.UserStatus) (*entity.Reservation, error) {
	if !userStatus.Valid() {
		return nil, errors.Validation("User status must be one of Good, Bad", nil)
	}

	return r.applyUpdate(ctx, id, []firestore.Update{
		{Path: "userStatus", Value: userStatus},
		{Path: "updatedAt", Value: time.Now()},
	})
}

func (r *firestoreReservationRepository) UpdateReview(ctx context.Context, id string, review string) (*entity.Reservation, error) {
	return r.applyUpdate(ctx, id, []firestore.Update{
		{Path: "review", Value: review},
		{Path: "updatedAt", Value: time.Now()},
	})
}

func (r *firestoreReservationRepository) applyUpdate(ctx context.Context, id string, updates []firestore.Update) (*entity.Reservation, error) {
	_, err := r.client.Collection("reservations").Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Reservation", err)
		}
		return nil, errors.Internal("Failed to update reservation", err)
	}

	return r.GetByID(ctx, id)
}
