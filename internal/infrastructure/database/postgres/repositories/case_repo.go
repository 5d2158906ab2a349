// Package repositories implements the persistence ports over postgres.
package repositories

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turtacn/GenApp-Engine/internal/domain/gacase"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

// CaseRepository persists case snapshots.  The snapshot body is stored as
// jsonb; reference and state are lifted into columns for lookups and
// reporting queries.
type CaseRepository struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewCaseRepository constructs a CaseRepository over pool.
func NewCaseRepository(pool *pgxpool.Pool, logger logging.Logger) *CaseRepository {
	return &CaseRepository{pool: pool, logger: logger.Named("repo.case")}
}

const getCaseQuery = `
SELECT snapshot
FROM ga_cases
WHERE reference = $1`

// GetByReference loads one case snapshot.
func (r *CaseRepository) GetByReference(ctx context.Context, reference string) (*gacase.CaseSnapshot, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, getCaseQuery, reference).Scan(&raw)
	if stderrors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New(errors.ErrCodeCaseNotFound, "case "+reference+" not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "query case "+reference)
	}

	var snapshot gacase.CaseSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "decode case "+reference)
	}
	return &snapshot, nil
}

const saveCaseQuery = `
INSERT INTO ga_cases (reference, state, snapshot, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (reference)
DO UPDATE SET state = EXCLUDED.state, snapshot = EXCLUDED.snapshot, updated_at = now()`

// Save upserts the snapshot under its reference.
func (r *CaseRepository) Save(ctx context.Context, snapshot *gacase.CaseSnapshot) error {
	if snapshot == nil || snapshot.Reference == "" {
		return errors.InvalidParam("snapshot with a reference is required")
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "encode case "+snapshot.Reference)
	}
	if _, err := r.pool.Exec(ctx, saveCaseQuery, snapshot.Reference, string(snapshot.State), raw); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "save case "+snapshot.Reference)
	}
	r.logger.Debug("case saved",
		logging.String("reference", snapshot.Reference),
		logging.String("state", string(snapshot.State)))
	return nil
}

const listCasesByStateQuery = `
SELECT snapshot
FROM ga_cases
WHERE state = $1
ORDER BY updated_at DESC
LIMIT $2`

// ListByState returns up to limit snapshots in the given lifecycle state,
// most recently updated first.
func (r *CaseRepository) ListByState(ctx context.Context, state gacase.State, limit int) ([]*gacase.CaseSnapshot, error) {
	if limit < 1 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, listCasesByStateQuery, string(state), limit)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "list cases by state")
	}
	defer rows.Close()

	var out []*gacase.CaseSnapshot
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "scan case row")
		}
		var snapshot gacase.CaseSnapshot
		if err := json.Unmarshal(raw, &snapshot); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeSerialization, "decode case row")
		}
		out = append(out, &snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "iterate case rows")
	}
	return out, nil
}
