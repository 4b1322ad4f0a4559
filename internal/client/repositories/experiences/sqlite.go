package experiences

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/prepshare/prepshare/internal/client/models"
	"github.com/prepshare/prepshare/internal/common"
	"github.com/prepshare/prepshare/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX. The full experience is
// stored as a JSON payload; created_at is duplicated into a column so listing
// can order without decoding.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func upsertOne(ctx context.Context, tx dbx.DBTX, exp models.Experience) error {
	payload, err := json.Marshal(exp)
	if err != nil {
		return fmt.Errorf("encoding experience %s: %w", exp.ID, err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO experiences (id, created_at, payload) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET created_at = excluded.created_at,
			payload = excluded.payload
	`, exp.ID, exp.CreatedAt.UnixMilli(), payload)
	if err != nil {
		return fmt.Errorf("failed to upsert experience %s: %w", exp.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, list []models.Experience) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM experiences`); err != nil {
			return fmt.Errorf("failed to clear experiences: %w", err)
		}
		for _, exp := range list {
			if err := upsertOne(ctx, tx, exp); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Upsert(ctx context.Context, exp models.Experience) error {
	return upsertOne(ctx, r.db, exp)
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Experience, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload FROM experiences ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select experiences: %w", err)
	}
	defer rows.Close()

	var result []models.Experience
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var exp models.Experience
		if err := json.Unmarshal(payload, &exp); err != nil {
			return nil, fmt.Errorf("decoding cached experience: %w", err)
		}
		result = append(result, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM experiences WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select experience %s: %w", id, err)
	}
	exp := &models.Experience{}
	if err := json.Unmarshal(payload, exp); err != nil {
		return nil, fmt.Errorf("decoding cached experience: %w", err)
	}
	return exp, nil
}
