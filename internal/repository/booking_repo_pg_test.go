package repository

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/reserva-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingRepository(t *testing.T) {
	repo := NewBookingRepository(&pgxpool.Pool{})
	assert.IsType(t, &PGBookingRepository{}, repo)
}

func TestListQueryHasNoExplicitSort(t *testing.T) {
	assert.NotContains(t, strings.ToUpper(listBookingsQuery), "ORDER BY")
}

func TestCreateBookingsTableColumns(t *testing.T) {
	for _, column := range []string{"name", "email", "origin", "destination", "date", "created_at"} {
		assert.Contains(t, createBookingsTable, column)
	}
}

// Runs against a real database only when POSTGRES_TEST_DSN is set.
func TestPGBookingRepository_CreateListCount(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, "TRUNCATE bookings RESTART IDENTITY")
	require.NoError(t, err)

	repo := NewBookingRepository(pool)
	for _, name := range []string{"Ana", "Rui"} {
		require.NoError(t, repo.Create(ctx, &domain.Booking{
			Name:        name,
			Email:       "x@x.com",
			Origin:      "Lisbon",
			Destination: "Porto",
			Date:        "2024-05-01",
			CreatedAt:   time.Now(),
		}))
	}

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.ElementsMatch(t, []string{"Ana", "Rui"}, []string{bookings[0].Name, bookings[1].Name})

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
