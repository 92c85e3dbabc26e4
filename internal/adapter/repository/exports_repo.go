package repository

import (
	"context"

	"resume-builder/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ExportsRepo keeps a history of finished exports. It is bookkeeping
// only; a nil pool turns every call into a no-op so the service runs
// without a database.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

func (r *ExportsRepo) Save(ctx context.Context, rec *domain.ExportRecord) error {
	if r.pool == nil {
		return nil
	}

	_, err := r.pool.Exec(ctx, `INSERT INTO resume_exports (id, format, file_name, file_path, title, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET format = EXCLUDED.format, file_name = EXCLUDED.file_name, file_path = EXCLUDED.file_path, title = EXCLUDED.title`,
		rec.ID, rec.Format, rec.FileName, rec.FilePath, rec.Title, rec.CreatedAt)
	return err
}

// Recent lists the latest export records, newest first.
func (r *ExportsRepo) Recent(ctx context.Context, limit int) ([]domain.ExportRecord, error) {
	if r.pool == nil {
		return []domain.ExportRecord{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx, `SELECT id, format, file_name, file_path, title, created_at
		FROM resume_exports ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ExportRecord{}
	for rows.Next() {
		var rec domain.ExportRecord
		if err := rows.Scan(&rec.ID, &rec.Format, &rec.FileName, &rec.FilePath, &rec.Title, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
