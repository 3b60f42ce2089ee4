//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lingua/backend/internal/model"
	"lingua/backend/pkg/snowflake"
)

// BusinessCardRepository defines the interface for business card storage.
type BusinessCardRepository interface {
	Create(ctx context.Context, card model.BusinessCard) (model.BusinessCard, error)
	List(ctx context.Context) ([]model.BusinessCard, error)
}

type businessCardRepository struct {
	db dbtx
}

func NewBusinessCardRepository(db *sql.DB) BusinessCardRepository {
	return &businessCardRepository{db: db}
}

// Create assigns an ID and creation time, then inserts the card.
func (r *businessCardRepository) Create(ctx context.Context, card model.BusinessCard) (model.BusinessCard, error) {
	card.ID = snowflake.NextID()
	card.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO business_cards (id, name, title, company, phone, email, qr_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, card.ID, card.Name, card.Title, card.Company, card.Phone, card.Email, card.QRCode, formatTime(card.CreatedAt))
	if err != nil {
		return model.BusinessCard{}, fmt.Errorf("insert business card: %w", err)
	}
	return card, nil
}

// List returns cards newest first.
func (r *businessCardRepository) List(ctx context.Context) ([]model.BusinessCard, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, title, company, phone, email, qr_code, created_at
		FROM business_cards ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query business cards: %w", err)
	}
	defer rows.Close()

	cards := make([]model.BusinessCard, 0)
	for rows.Next() {
		var (
			card                                 model.BusinessCard
			title, company, phone, email, qrCode sql.NullString
			createdAt                            string
		)
		if err := rows.Scan(&card.ID, &card.Name, &title, &company, &phone, &email, &qrCode, &createdAt); err != nil {
			return nil, err
		}
		card.Title = title.String
		card.Company = company.String
		card.Phone = phone.String
		card.Email = email.String
		card.QRCode = qrCode.String
		parsed, err := parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("business card %d created_at: %w", card.ID, err)
		}
		card.CreatedAt = parsed
		cards = append(cards, card)
	}
	return cards, rows.Err()
}
