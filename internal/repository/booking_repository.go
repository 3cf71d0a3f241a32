package repository

import (
	"context"

	"github.com/Domenick1991/reserva-backend/internal/domain"
)

// BookingRepository is the append-only booking store. Implementations return
// raw driver errors; callers decide how to classify them.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	List(ctx context.Context) ([]domain.Booking, error)
	Count(ctx context.Context) (int64, error)
}
