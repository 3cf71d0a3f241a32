package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/reserva-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createBookingsTable = `CREATE TABLE IF NOT EXISTS bookings (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	origin      TEXT NOT NULL,
	destination TEXT NOT NULL,
	date        TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
)`

const listBookingsQuery = `SELECT id, name, email, origin, destination, date, created_at FROM bookings`

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// EnsureSchema creates the bookings table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, createBookingsTable); err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}
	return nil
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	_, err := r.db.Exec(ctx, `INSERT INTO bookings (name, email, origin, destination, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		booking.Name, booking.Email, booking.Origin, booking.Destination, booking.Date, booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// List returns bookings in the table's natural order.
func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, listBookingsQuery)
	if err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var (
			id int64
			b  domain.Booking
		)
		if err := rows.Scan(&id, &b.Name, &b.Email, &b.Origin, &b.Destination, &b.Date, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		b.ID = fmt.Sprint(id)
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM bookings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
