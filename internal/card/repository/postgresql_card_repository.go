// Package repository implements card persistence for PostgreSQL and MySQL.
//
// Every method resolves its querier through database.GetTx, so calls made inside
// TxManager.WithTx join the surrounding transaction. PostgreSQL stores ids as native
// UUIDs, MySQL as BINARY(16).
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	cardDomain "github.com/allisson/cardledger/internal/card/domain"
	"github.com/allisson/cardledger/internal/database"
	apperrors "github.com/allisson/cardledger/internal/errors"
)

const postgresCardColumns = `id, number, owner_id, expiry_date, status, balance, created_at, updated_at`

// PostgreSQLCardRepository implements Card persistence for PostgreSQL.
type PostgreSQLCardRepository struct {
	db *sql.DB
}

// Save inserts the card, or updates status, balance and updated_at when the id already exists.
// Number, owner and expiry date are never rewritten.
func (p *PostgreSQLCardRepository) Save(ctx context.Context, card *cardDomain.Card) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO cards (id, number, owner_id, expiry_date, status, balance, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  ON CONFLICT (id) DO UPDATE
			  SET status = EXCLUDED.status,
			      balance = EXCLUDED.balance,
			      updated_at = EXCLUDED.updated_at`

	_, err := querier.ExecContext(
		ctx,
		query,
		card.ID,
		card.Number,
		card.OwnerID,
		card.ExpiryDate,
		string(card.Status),
		card.Balance,
		card.CreatedAt,
		card.UpdatedAt,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperrors.Wrap(apperrors.ErrNotFound, "card owner not found")
		}
		return apperrors.Wrap(err, "failed to save card")
	}
	return nil
}

// Get retrieves a card by id.
func (p *PostgreSQLCardRepository) Get(ctx context.Context, cardID uuid.UUID) (*cardDomain.Card, error) {
	query := `SELECT ` + postgresCardColumns + ` FROM cards WHERE id = $1`
	return p.getOne(ctx, query, cardID)
}

// GetForUpdate retrieves a card by id and locks its row until the transaction ends.
func (p *PostgreSQLCardRepository) GetForUpdate(
	ctx context.Context,
	cardID uuid.UUID,
) (*cardDomain.Card, error) {
	query := `SELECT ` + postgresCardColumns + ` FROM cards WHERE id = $1 FOR UPDATE`
	return p.getOne(ctx, query, cardID)
}

func (p *PostgreSQLCardRepository) getOne(
	ctx context.Context,
	query string,
	cardID uuid.UUID,
) (*cardDomain.Card, error) {
	querier := database.GetTx(ctx, p.db)

	card, err := scanPostgresCard(querier.QueryRowContext(ctx, query, cardID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cardDomain.ErrCardNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get card")
	}
	return card, nil
}

// ListByOwner returns a page of the owner's cards ordered by id.
func (p *PostgreSQLCardRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*cardDomain.Card, error) {
	query := `SELECT ` + postgresCardColumns + ` FROM cards
			  WHERE owner_id = $1
			  ORDER BY id ASC
			  LIMIT $2 OFFSET $3`
	return p.list(ctx, query, ownerID, limit, offset)
}

// ListByOwnerAndStatus returns a page of the owner's cards with the given status ordered by id.
func (p *PostgreSQLCardRepository) ListByOwnerAndStatus(
	ctx context.Context,
	ownerID uuid.UUID,
	status cardDomain.Status,
	offset, limit int,
) ([]*cardDomain.Card, error) {
	query := `SELECT ` + postgresCardColumns + ` FROM cards
			  WHERE owner_id = $1 AND status = $2
			  ORDER BY id ASC
			  LIMIT $3 OFFSET $4`
	return p.list(ctx, query, ownerID, string(status), limit, offset)
}

// List returns a page of all cards ordered by id.
func (p *PostgreSQLCardRepository) List(ctx context.Context, offset, limit int) ([]*cardDomain.Card, error) {
	query := `SELECT ` + postgresCardColumns + ` FROM cards
			  ORDER BY id ASC
			  LIMIT $1 OFFSET $2`
	return p.list(ctx, query, limit, offset)
}

func (p *PostgreSQLCardRepository) list(
	ctx context.Context,
	query string,
	args ...any,
) ([]*cardDomain.Card, error) {
	querier := database.GetTx(ctx, p.db)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list cards")
	}
	defer func() {
		_ = rows.Close()
	}()

	cards := make([]*cardDomain.Card, 0)
	for rows.Next() {
		card, err := scanPostgresCard(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan card")
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate cards")
	}
	return cards, nil
}

// Delete permanently removes a card.
func (p *PostgreSQLCardRepository) Delete(ctx context.Context, cardID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, cardID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete card")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return cardDomain.ErrCardNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostgresCard(row rowScanner) (*cardDomain.Card, error) {
	var card cardDomain.Card
	var status string
	err := row.Scan(
		&card.ID,
		&card.Number,
		&card.OwnerID,
		&card.ExpiryDate,
		&status,
		&card.Balance,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	card.Status = cardDomain.Status(status)
	return &card, nil
}

// NewPostgreSQLCardRepository creates a new PostgreSQL card repository.
func NewPostgreSQLCardRepository(db *sql.DB) *PostgreSQLCardRepository {
	return &PostgreSQLCardRepository{db: db}
}
