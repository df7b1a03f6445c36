// Package history implements the change log repository using PostgreSQL.
// It provides append-only operations for history records.
package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const historyColumns = `id, entity_type, entity_id, user_id, action, changes, created_at`

const createSQL = `
INSERT INTO history (entity_type, entity_id, user_id, action, changes)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`

const getByEntitySQL = `
SELECT ` + historyColumns + `
FROM history
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC, id DESC
LIMIT $3`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a history record and fills in its ID and creation time.
func (r *Repo) Create(ctx context.Context, rec *domain.HistoryRecord) error {
	changes, err := marshalChanges(rec)
	if err != nil {
		return err
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	err = q.QueryRow(ctx, createSQL, string(rec.EntityType), rec.EntityID, rec.UserID, string(rec.Action), changes).
		Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "history", rec.EntityID)
	}
	return nil
}

// Log creates a history record without returning it.
func (r *Repo) Log(ctx context.Context, rec domain.HistoryRecord) error {
	return r.Create(ctx, &rec)
}

// LogBatch appends several history records in one round trip.
func (r *Repo) LogBatch(ctx context.Context, recs []domain.HistoryRecord) error {
	if len(recs) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	for i := range recs {
		changes, err := marshalChanges(&recs[i])
		if err != nil {
			return err
		}
		batch.Queue(createSQL, string(recs[i].EntityType), recs[i].EntityID, recs[i].UserID, string(recs[i].Action), changes)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for i := range recs {
		if err := br.QueryRow().Scan(&recs[i].ID, &recs[i].CreatedAt); err != nil {
			return postgres.MapError(err, "history", recs[i].EntityID)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history of one entity, newest first,
// limited to limit records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.HistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, getByEntitySQL, string(entityType), entityID, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("get history by entity: %w", err)
	}
	defer rows.Close()

	var out []domain.HistoryRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get history by entity: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func marshalChanges(rec *domain.HistoryRecord) ([]byte, error) {
	if !rec.EntityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", "unknown entity type")
	}
	if rec.Changes == nil {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(rec.Changes)
	if err != nil {
		return nil, fmt.Errorf("history %s marshal changes: %w", rec.EntityID, err)
	}
	return data, nil
}

func scanRecord(row pgx.Row) (*domain.HistoryRecord, error) {
	var (
		rec        domain.HistoryRecord
		entityType string
		action     string
		userID     *uuid.UUID
		changes    []byte
	)
	if err := row.Scan(&rec.ID, &entityType, &rec.EntityID, &userID, &action, &changes, &rec.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan history: %w", err)
	}
	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.HistoryAction(action)
	rec.UserID = userID

	if len(changes) > 0 {
		m := make(map[string]any)
		if err := json.Unmarshal(changes, &m); err != nil {
			return nil, fmt.Errorf("history %d unmarshal changes: %w", rec.ID, err)
		}
		rec.Changes = m
	}
	return &rec, nil
}
