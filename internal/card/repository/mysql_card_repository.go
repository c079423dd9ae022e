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

const mysqlCardColumns = `id, number, owner_id, expiry_date, status, balance, created_at, updated_at`

// MySQLCardRepository implements Card persistence for MySQL using BINARY(16) ids.
type MySQLCardRepository struct {
	db *sql.DB
}

// Save inserts the card, or updates status, balance and updated_at when the id already exists.
func (m *MySQLCardRepository) Save(ctx context.Context, card *cardDomain.Card) error {
	querier := database.GetTx(ctx, m.db)

	id, err := card.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal card id")
	}
	ownerID, err := card.OwnerID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal owner id")
	}

	query := `INSERT INTO cards (id, number, owner_id, expiry_date, status, balance, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			  ON DUPLICATE KEY UPDATE
			  status = VALUES(status),
			  balance = VALUES(balance),
			  updated_at = VALUES(updated_at)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		card.Number,
		ownerID,
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
func (m *MySQLCardRepository) Get(ctx context.Context, cardID uuid.UUID) (*cardDomain.Card, error) {
	query := `SELECT ` + mysqlCardColumns + ` FROM cards WHERE id = ?`
	return m.getOne(ctx, query, cardID)
}

// GetForUpdate retrieves a card by id and locks its row until the transaction ends.
func (m *MySQLCardRepository) GetForUpdate(ctx context.Context, cardID uuid.UUID) (*cardDomain.Card, error) {
	query := `SELECT ` + mysqlCardColumns + ` FROM cards WHERE id = ? FOR UPDATE`
	return m.getOne(ctx, query, cardID)
}

func (m *MySQLCardRepository) getOne(
	ctx context.Context,
	query string,
	cardID uuid.UUID,
) (*cardDomain.Card, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := cardID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal card id")
	}

	card, err := scanMySQLCard(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cardDomain.ErrCardNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get card")
	}
	return card, nil
}

// ListByOwner returns a page of the owner's cards ordered by id.
func (m *MySQLCardRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*cardDomain.Card, error) {
	owner, err := ownerID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal owner id")
	}
	query := `SELECT ` + mysqlCardColumns + ` FROM cards
			  WHERE owner_id = ?
			  ORDER BY id ASC
			  LIMIT ? OFFSET ?`
	return m.list(ctx, query, owner, limit, offset)
}

// ListByOwnerAndStatus returns a page of the owner's cards with the given status ordered by id.
func (m *MySQLCardRepository) ListByOwnerAndStatus(
	ctx context.Context,
	ownerID uuid.UUID,
	status cardDomain.Status,
	offset, limit int,
) ([]*cardDomain.Card, error) {
	owner, err := ownerID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal owner id")
	}
	query := `SELECT ` + mysqlCardColumns + ` FROM cards
			  WHERE owner_id = ? AND status = ?
			  ORDER BY id ASC
			  LIMIT ? OFFSET ?`
	return m.list(ctx, query, owner, string(status), limit, offset)
}

// List returns a page of all cards ordered by id.
func (m *MySQLCardRepository) List(ctx context.Context, offset, limit int) ([]*cardDomain.Card, error) {
	query := `SELECT ` + mysqlCardColumns + ` FROM cards
			  ORDER BY id ASC
			  LIMIT ? OFFSET ?`
	return m.list(ctx, query, limit, offset)
}

func (m *MySQLCardRepository) list(ctx context.Context, query string, args ...any) ([]*cardDomain.Card, error) {
	querier := database.GetTx(ctx, m.db)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list cards")
	}
	defer func() {
		_ = rows.Close()
	}()

	cards := make([]*cardDomain.Card, 0)
	for rows.Next() {
		card, err := scanMySQLCard(rows)
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
func (m *MySQLCardRepository) Delete(ctx context.Context, cardID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := cardID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal card id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
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

func scanMySQLCard(row rowScanner) (*cardDomain.Card, error) {
	var card cardDomain.Card
	var idBytes, ownerBytes []byte
	var status string
	err := row.Scan(
		&idBytes,
		&card.Number,
		&ownerBytes,
		&card.ExpiryDate,
		&status,
		&card.Balance,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := card.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal card id")
	}
	if err := card.OwnerID.UnmarshalBinary(ownerBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal owner id")
	}
	card.Status = cardDomain.Status(status)
	return &card, nil
}

// NewMySQLCardRepository creates a new MySQL card repository.
func NewMySQLCardRepository(db *sql.DB) *MySQLCardRepository {
	return &MySQLCardRepository{db: db}
}
