package postgres

import (
	"context"
	"errors"
	"time"

	"cleanpro-api/internal/domain/booking"
	"cleanpro-api/internal/infra"
	"cleanpro-api/internal/pkg/calendar"
	"cleanpro-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const insertBookingSQL = `
INSERT INTO bookings (
    id, day, service_id, service_name,
    client_name, client_phone, client_email, client_address,
    notes, status, notification_sent, created_at, confirmed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	client := b.Client()
	_, err := r.pool.Exec(ctx, insertBookingSQL,
		b.ID(), b.Day().Time(), b.ServiceID(), b.ServiceName(),
		client.Name(), client.Phone(), client.Email(), client.Address(),
		b.Note().String(), string(b.Status()), b.NotificationSent(),
		b.CreatedAt(), b.ConfirmedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

const selectBookingSQL = `
SELECT id, day, service_id, service_name,
       client_name, client_phone, client_email, client_address,
       notes, status, notification_sent, created_at, confirmed_at
FROM bookings`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx, selectBookingSQL+" WHERE id = $1", id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return b, nil
}

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $1, notification_sent = $2, confirmed_at = $3
WHERE id = $4 AND status = $5`

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking, expected booking.Status) error {
	tag, err := r.pool.Exec(ctx, updateBookingStatusSQL,
		string(b.Status()), b.NotificationSent(), b.ConfirmedAt(), b.ID(), string(expected),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the booking vanished or a concurrent transition won.
		var exists bool
		if err := r.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)", b.ID()).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to check booking existence", err)
		}
		if !exists {
			return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
		}
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

type bookingRow interface {
	Scan(dest ...any) error
}

func scanBooking(row bookingRow) (*booking.Booking, error) {
	var (
		id                            uuid.UUID
		day                           time.Time
		serviceID, serviceName        string
		name, phone, email, address   string
		notes, status                 string
		notificationSent              bool
		createdAt                     time.Time
		confirmedAt                   *time.Time
	)
	if err := row.Scan(
		&id, &day, &serviceID, &serviceName,
		&name, &phone, &email, &address,
		&notes, &status, &notificationSent, &createdAt, &confirmedAt,
	); err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, calendar.DayOf(day), serviceID, serviceName,
		booking.ReconstructClientInfo(name, phone, email, address),
		booking.NewNote(notes),
		booking.Status(status), notificationSent, createdAt, confirmedAt,
	), nil
}

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.pool.QueryRow(ctx, selectBookingSQL+" WHERE id = $1", id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return bookingToView(b), nil
}

func (r *BookingReadStore) List(ctx context.Context) ([]*queries.BookingView, error) {
	return r.listWhere(ctx, " ORDER BY created_at ASC")
}

func (r *BookingReadStore) ListByStatus(ctx context.Context, status string) ([]*queries.BookingView, error) {
	return r.listWhere(ctx, " WHERE status = $1 ORDER BY created_at ASC", status)
}

func (r *BookingReadStore) ListByDay(ctx context.Context, day calendar.Day) ([]*queries.BookingView, error) {
	return r.listWhere(ctx, " WHERE day = $1 ORDER BY created_at DESC", day.Time())
}

func (r *BookingReadStore) listWhere(ctx context.Context, clause string, args ...any) ([]*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, selectBookingSQL+clause, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, bookingToView(b))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func (r *BookingReadStore) DaysByStatus(ctx context.Context, status string) ([]calendar.Day, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT DISTINCT day FROM bookings WHERE status = $1 ORDER BY day ASC", status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking days", err)
	}
	defer rows.Close()

	var days []calendar.Day
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking day", err)
		}
		days = append(days, calendar.DayOf(t))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking days", err)
	}
	return days, nil
}

func (r *BookingReadStore) CountsByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, "SELECT status, COUNT(*) FROM bookings GROUP BY status")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking count", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking counts", err)
	}
	return counts, nil
}

func bookingToView(b *booking.Booking) *queries.BookingView {
	client := b.Client()
	return &queries.BookingView{
		ID:               b.ID(),
		ShortCode:        b.ShortCode(),
		Day:              b.Day(),
		ServiceID:        b.ServiceID(),
		ServiceName:      b.ServiceName(),
		ClientName:       client.Name(),
		ClientPhone:      client.Phone(),
		ClientEmail:      client.Email(),
		ClientAddress:    client.Address(),
		Notes:            b.Note().String(),
		Status:           string(b.Status()),
		NotificationSent: b.NotificationSent(),
		CreatedAt:        b.CreatedAt(),
		ConfirmedAt:      b.ConfirmedAt(),
	}
}
