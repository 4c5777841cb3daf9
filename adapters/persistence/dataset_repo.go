package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// Snapshot is one stored revision of the dataset.
type Snapshot struct {
	ID        uuid.UUID
	Version   string
	CreatedAt time.Time
}

// PostgresDatasetRepo keeps dataset revisions as JSONB rows and serves the
// newest one.
type PostgresDatasetRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresDatasetRepo(db *pgxpool.Pool, logger logger.Logger) *PostgresDatasetRepo {
	return &PostgresDatasetRepo{db: db, logger: logger}
}

var psqlSnapshot = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *PostgresDatasetRepo) Load(ctx context.Context) (*portfolio.Dataset, error) {
	sql, args, err := psqlSnapshot.Select("id, document").
		From("portfolio_snapshots").
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build latest snapshot query", err)
	}

	var (
		id  uuid.UUID
		doc []byte
	)
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id, &doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("portfolio snapshot", "latest")
		}
		return nil, apperror.NewInternal("failed to query latest snapshot", err)
	}

	d, err := DecodeDataset("postgres:"+id.String(), doc)
	if err != nil {
		return nil, err
	}
	if dups := d.DuplicateProjectIDs(); len(dups) > 0 {
		r.logger.Warn("Duplicate project ids in dataset, first match wins",
			zap.String("snapshot_id", id.String()), zap.Strings("ids", dups))
	}
	return d, nil
}

// SaveSnapshot stores d as the newest revision. Saving content that is
// already stored only bumps its timestamp.
func (r *PostgresDatasetRepo) SaveSnapshot(ctx context.Context, d *portfolio.Dataset) (*Snapshot, error) {
	if err := d.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("dataset failed validation", err)
	}
	doc, err := json.Marshal(d)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal dataset", err)
	}

	s := &Snapshot{ID: uuid.New(), Version: d.Version()}
	sql, args, err := psqlSnapshot.Insert("portfolio_snapshots").
		Columns("id", "version", "document", "created_at").
		Values(s.ID, s.Version, doc, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (version) DO UPDATE SET created_at = NOW() RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build snapshot insert", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, apperror.NewInternal("failed to insert snapshot", err)
	}

	r.logger.Info("Saved portfolio snapshot", zap.String("snapshot_id", s.ID.String()), zap.String("version", s.Version))
	return s, nil
}
