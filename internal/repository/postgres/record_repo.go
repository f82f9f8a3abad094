package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"ravepayments/internal/domain"
)

type recordRepository struct {
	DB *sql.DB
}

// NewRecordRepository returns a RecordRepository backed by the payment_records
// table. Columns mirror the external store's field contract; rows are only
// ever inserted, never updated or deleted.
func NewRecordRepository(db *sql.DB) domain.RecordRepository {
	return &recordRepository{DB: db}
}

func (r *recordRepository) Append(ctx context.Context, record *domain.Record) error {
	query := `
		INSERT INTO payment_records (timestamp, buyer_name, ticket_number, buyer_contact, tier_label, kind, amount_paid, member_name, notes, proof_base64)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		record.Timestamp,
		record.BuyerName,
		record.TicketNumber,
		record.BuyerContact,
		record.TierLabel,
		record.Kind,
		record.AmountPaid,
		record.MemberName,
		record.Notes,
		record.ProofBase64,
	)
	if err != nil {
		return fmt.Errorf("insert payment record: %w", err)
	}
	return nil
}

func (r *recordRepository) ListAll(ctx context.Context) ([]*domain.Record, error) {
	query := `
		SELECT timestamp, buyer_name, ticket_number, buyer_contact, tier_label, kind, amount_paid, member_name, notes, proof_base64
		FROM payment_records
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payment records: %w", err)
	}
	defer rows.Close()

	records := []*domain.Record{}
	for rows.Next() {
		rec := &domain.Record{}
		if err := rows.Scan(
			&rec.Timestamp,
			&rec.BuyerName,
			&rec.TicketNumber,
			&rec.BuyerContact,
			&rec.TierLabel,
			&rec.Kind,
			&rec.AmountPaid,
			&rec.MemberName,
			&rec.Notes,
			&rec.ProofBase64,
		); err != nil {
			return nil, fmt.Errorf("scan payment record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment records: %w", err)
	}
	return records, nil
}
