package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/reserva-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMongoBookingRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	booking := &domain.Booking{
		Name:        "Ana",
		Email:       "ana@x.com",
		Origin:      "Lisbon",
		Destination: "Porto",
		Date:        "2024-05-01",
		CreatedAt:   time.Now(),
	}

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		booking.ID = ""
		repo := NewMongoBookingRepository(mt.Coll)
		err := repo.Create(context.Background(), booking)
		assert.NoError(mt, err)

		_, hexErr := primitive.ObjectIDFromHex(booking.ID)
		assert.NoError(mt, hexErr, "stored id is written back")
	})

	mt.Run("write error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "document failed validation",
		}))

		repo := NewMongoBookingRepository(mt.Coll)
		err := repo.Create(context.Background(), booking)
		assert.Error(mt, err)
		assert.Contains(mt, err.Error(), "insert booking")
	})
}

func TestMongoBookingRepository_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns documents in store order", func(mt *mtest.T) {
		id1 := primitive.NewObjectID()
		id2 := primitive.NewObjectID()
		created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: id1},
				{Key: "name", Value: "Ana"},
				{Key: "email", Value: "ana@x.com"},
				{Key: "origin", Value: "Lisbon"},
				{Key: "destination", Value: "Porto"},
				{Key: "date", Value: "2024-05-01"},
				{Key: "createdAt", Value: created},
			},
			bson.D{
				{Key: "_id", Value: id2},
				{Key: "name", Value: "Rui"},
				{Key: "email", Value: "rui@x.com"},
				{Key: "origin", Value: "Faro"},
				{Key: "destination", Value: "Braga"},
				{Key: "date", Value: "2024-06-12"},
				{Key: "createdAt", Value: created},
			},
		))

		repo := NewMongoBookingRepository(mt.Coll)
		bookings, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, bookings, 2)

		assert.Equal(mt, id1.Hex(), bookings[0].ID)
		assert.Equal(mt, "Ana", bookings[0].Name)
		assert.Equal(mt, "Porto", bookings[0].Destination)
		assert.True(mt, created.Equal(bookings[0].CreatedAt))
		assert.Equal(mt, id2.Hex(), bookings[1].ID)
		assert.Equal(mt, "Rui", bookings[1].Name)
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		repo := NewMongoBookingRepository(mt.Coll)
		bookings, err := repo.List(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, bookings)
		assert.Empty(mt, bookings)
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on reservasDB",
		}))

		repo := NewMongoBookingRepository(mt.Coll)
		bookings, err := repo.List(context.Background())
		assert.Error(mt, err)
		assert.Nil(mt, bookings)
		assert.Contains(mt, err.Error(), "not authorized")
	})
}

func TestMongoBookingRepository_Count(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(3)}},
		))

		repo := NewMongoBookingRepository(mt.Coll)
		n, err := repo.Count(context.Background())
		assert.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "invalid pipeline",
		}))

		repo := NewMongoBookingRepository(mt.Coll)
		_, err := repo.Count(context.Background())
		assert.Error(mt, err)
		assert.Contains(mt, err.Error(), "count bookings")
	})
}
