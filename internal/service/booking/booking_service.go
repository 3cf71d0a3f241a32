package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/reserva-backend/internal/domain"
	"github.com/Domenick1991/reserva-backend/internal/kafka"
	"github.com/Domenick1991/reserva-backend/internal/repository"
	"github.com/Domenick1991/reserva-backend/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	confirmationSubject  = "Booking confirmation"
	confirmationTemplate = "Hello %s, your booking from %s to %s on %s is confirmed!"

	EventBookingConfirmed = "booking_confirmed"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	CountBookings(ctx context.Context) (int64, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Cache interface {
	GetBookings(ctx context.Context) ([]domain.Booking, error)
	SetBookings(ctx context.Context, bookings []domain.Booking) error
	InvalidateBookings(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateBookingInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Date        string `json:"date" validate:"required"`
}

func (in *CreateBookingInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Origin = strings.TrimSpace(in.Origin)
	in.Destination = strings.TrimSpace(in.Destination)
	in.Date = strings.TrimSpace(in.Date)
}

type BookingService struct {
	bookings     repository.BookingRepository
	mailer       Mailer
	cache        Cache
	producer     Producer
	bookingTopic string
	logger       *zap.Logger
	validate     *validator.Validate
	now          func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

// WithEventPublisher enables best-effort booking events on topic.
func WithEventPublisher(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = topic
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	mailer Mailer,
	logger *zap.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings: bookings,
		mailer:   mailer,
		logger:   logger,
		validate: validation.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking stores the booking and then mails a confirmation. A mail
// failure is reported as MailDeliveryError; the stored record is kept.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	input.normalize()
	if err := s.validate.Struct(input); err != nil {
		return nil, validation.ToValidationError(err)
	}

	booking := &domain.Booking{
		Name:        input.Name,
		Email:       input.Email,
		Origin:      input.Origin,
		Destination: input.Destination,
		Date:        input.Date,
		CreatedAt:   s.now(),
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, &domain.PersistenceError{Op: "create booking", Err: err}
	}
	s.invalidateCache(ctx)

	body := fmt.Sprintf(confirmationTemplate, booking.Name, booking.Origin, booking.Destination, booking.Date)
	if err := s.mailer.Send(ctx, booking.Email, confirmationSubject, body); err != nil {
		s.logger.Error("booking stored but confirmation was not sent",
			zap.String("email", booking.Email),
			zap.Error(err))
		return nil, &domain.MailDeliveryError{Recipient: booking.Email, Err: err}
	}

	if err := s.publish(ctx, EventBookingConfirmed, booking); err != nil {
		s.logger.Warn("failed to publish booking event",
			zap.String("type", EventBookingConfirmed),
			zap.Error(err))
	}
	return booking, nil
}

// ListBookings returns every stored booking in the store's natural order.
func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	if s.cache != nil {
		cached, err := s.cache.GetBookings(ctx)
		if err != nil {
			s.logger.Debug("bookings cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list bookings", Err: err}
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	if s.cache != nil {
		if err := s.cache.SetBookings(ctx, bookings); err != nil {
			s.logger.Debug("bookings cache write failed", zap.Error(err))
		}
	}
	return bookings, nil
}

func (s *BookingService) CountBookings(ctx context.Context) (int64, error) {
	n, err := s.bookings.Count(ctx)
	if err != nil {
		return 0, &domain.PersistenceError{Op: "count bookings", Err: err}
	}
	return n, nil
}

func (s *BookingService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateBookings(ctx); err != nil {
		s.logger.Warn("failed to invalidate bookings cache", zap.Error(err))
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		Name:        booking.Name,
		Email:       booking.Email,
		Origin:      booking.Origin,
		Destination: booking.Destination,
		Date:        booking.Date,
		CreatedAt:   booking.CreatedAt,
	}
	return s.producer.Publish(ctx, s.bookingTopic, event.ID, event)
}

var _ BookingUseCase = (*BookingService)(nil)
