package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/reserva-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookingDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Origin      string             `bson:"origin"`
	Destination string             `bson:"destination"`
	Date        string             `bson:"date"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d bookingDocument) toDomain() domain.Booking {
	b := domain.Booking{
		Name:        d.Name,
		Email:       d.Email,
		Origin:      d.Origin,
		Destination: d.Destination,
		Date:        d.Date,
		CreatedAt:   d.CreatedAt,
	}
	if !d.ID.IsZero() {
		b.ID = d.ID.Hex()
	}
	return b
}

type MongoBookingRepository struct {
	coll *mongo.Collection
}

func NewMongoBookingRepository(coll *mongo.Collection) BookingRepository {
	return &MongoBookingRepository{coll: coll}
}

// ConnectMongo opens a client and pings the primary so a bad URI fails at
// startup instead of on the first request.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("db is not available: %w", err)
	}
	return client, nil
}

func (r *MongoBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	doc := bookingDocument{
		Name:        booking.Name,
		Email:       booking.Email,
		Origin:      booking.Origin,
		Destination: booking.Destination,
		Date:        booking.Date,
		CreatedAt:   booking.CreatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		booking.ID = id.Hex()
	}
	return nil
}

func (r *MongoBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := make([]domain.Booking, 0)
	for cur.Next(ctx) {
		var doc bookingDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

var _ BookingRepository = (*MongoBookingRepository)(nil)
