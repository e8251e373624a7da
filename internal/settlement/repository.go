package settlement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/richxcame/motorent/internal/royalty"
)

// Repository reads reservations for settlement
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new settlement repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListReservations returns reservations starting in [from, to), optionally for one vendor
func (r *Repository) ListReservations(ctx context.Context, from, to time.Time, vendorID *uuid.UUID) ([]royalty.ReservationRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.vendor_id, COALESCE(v.name, ''), r.start_at,
			r.base_amount, r.total_amount, COALESCE(r.payment_types, '{}'),
			r.status, r.payment_settlement, r.plan, b.vehicle_class
		FROM reservations r
		LEFT JOIN vendors v ON v.id = r.vendor_id
		LEFT JOIN bikes b ON b.id = r.bike_id
		WHERE r.start_at >= $1 AND r.start_at < $2
			AND ($3::uuid IS NULL OR r.vendor_id = $3)
		ORDER BY r.start_at, r.id`,
		from, to, vendorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []royalty.ReservationRecord
	for rows.Next() {
		rec := royalty.ReservationRecord{}
		if err := rows.Scan(
			&rec.ID, &rec.VendorID, &rec.VendorName, &rec.StartAt,
			&rec.BaseAmount, &rec.TotalAmount, &rec.PaymentTypes,
			&rec.Status, &rec.PaymentSettlement, &rec.Plan, &rec.VehicleClass,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
