// Package archive persists finished meets to PostgreSQL so the federation
// keeps a queryable history across seasons. Archiving is optional; the
// pipeline runs without a database.
package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrpower/meetreport/internal/rankings"
	"github.com/hrpower/meetreport/internal/results"
)

// Repository handles meet archive persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new archive repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// EnsureSchema creates the archive tables if they do not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS meets (
			id          BIGSERIAL PRIMARY KEY,
			slug        TEXT NOT NULL UNIQUE,
			name        TEXT NOT NULL,
			archived_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS meet_results (
			id            BIGSERIAL PRIMARY KEY,
			meet_id       BIGINT NOT NULL REFERENCES meets(id) ON DELETE CASCADE,
			place         TEXT NOT NULL,
			name          TEXT NOT NULL,
			club          TEXT NOT NULL,
			sex           TEXT NOT NULL,
			birth_year    INT,
			division      TEXT NOT NULL,
			weight_class  TEXT NOT NULL,
			bodyweight_kg DOUBLE PRECISION NOT NULL,
			total_kg      DOUBLE PRECISION NOT NULL,
			points        DOUBLE PRECISION NOT NULL,
			event         TEXT NOT NULL,
			equipped      BOOLEAN NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_meet_results_meet
			ON meet_results(meet_id);
		CREATE INDEX IF NOT EXISTS idx_meet_results_name
			ON meet_results(name);

		CREATE TABLE IF NOT EXISTS meet_club_standings (
			id       BIGSERIAL PRIMARY KEY,
			meet_id  BIGINT NOT NULL REFERENCES meets(id) ON DELETE CASCADE,
			category TEXT NOT NULL,
			place    INT NOT NULL,
			club     TEXT NOT NULL,
			points   DOUBLE PRECISION NOT NULL,
			counted  INT NOT NULL,
			UNIQUE (meet_id, category, club)
		);
	`

	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create archive schema: %w", err)
	}

	return nil
}

// SaveMeet stores one meet's results and standings under its slug.
// Re-archiving the same slug replaces the previous rows.
func (r *Repository) SaveMeet(ctx context.Context, slug, name string, entries []*results.Entry, standings map[string][]rankings.ClubStanding) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var meetID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO meets (slug, name, archived_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET
			name        = EXCLUDED.name,
			archived_at = EXCLUDED.archived_at
		RETURNING id
	`, slug, name, time.Now()).Scan(&meetID)
	if err != nil {
		return fmt.Errorf("failed to upsert meet %s: %w", slug, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM meet_results WHERE meet_id = $1`, meetID); err != nil {
		return fmt.Errorf("failed to clear previous results: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM meet_club_standings WHERE meet_id = $1`, meetID); err != nil {
		return fmt.Errorf("failed to clear previous standings: %w", err)
	}

	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		var birthYear interface{}
		if e.BirthYear != 0 {
			birthYear = e.BirthYear
		}
		rows = append(rows, []interface{}{
			meetID, e.Place, e.Name, e.Club, string(e.Sex), birthYear,
			e.Division, e.WeightClass, e.BodyweightKg, e.TotalKg,
			e.Points, string(e.Event), e.Equipped,
		})
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"meet_results"},
		[]string{
			"meet_id", "place", "name", "club", "sex", "birth_year",
			"division", "weight_class", "bodyweight_kg", "total_kg",
			"points", "event", "equipped",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to copy results: %w", err)
	}

	for category, clubStandings := range standings {
		for _, s := range clubStandings {
			_, err := tx.Exec(ctx, `
				INSERT INTO meet_club_standings (meet_id, category, place, club, points, counted)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, meetID, category, s.Place, s.Club, s.Points, s.Counted)
			if err != nil {
				return fmt.Errorf("failed to insert standing for %s: %w", s.Club, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit archive: %w", err)
	}

	return nil
}

// ArchivedMeet is one row of the archive listing.
type ArchivedMeet struct {
	Slug       string    `json:"slug"`
	Name       string    `json:"name"`
	ArchivedAt time.Time `json:"archived_at"`
	Records    int       `json:"records"`
}

// ListMeets returns archived meets, newest first.
func (r *Repository) ListMeets(ctx context.Context) ([]ArchivedMeet, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.slug, m.name, m.archived_at, COUNT(r.id)
		FROM meets m
		LEFT JOIN meet_results r ON r.meet_id = m.id
		GROUP BY m.id
		ORDER BY m.archived_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list meets: %w", err)
	}
	defer rows.Close()

	var meets []ArchivedMeet
	for rows.Next() {
		var m ArchivedMeet
		if err := rows.Scan(&m.Slug, &m.Name, &m.ArchivedAt, &m.Records); err != nil {
			return nil, fmt.Errorf("failed to scan meet row: %w", err)
		}
		meets = append(meets, m)
	}

	return meets, rows.Err()
}

// LifterResult is one archived result of a lifter, with the meet it came from.
type LifterResult struct {
	MeetSlug string  `json:"meet_slug"`
	MeetName string  `json:"meet_name"`
	Place    string  `json:"place"`
	Division string  `json:"division"`
	TotalKg  float64 `json:"total_kg"`
	Points   float64 `json:"points"`
	Event    string  `json:"event"`
}

// LifterHistory returns a lifter's archived results across meets,
// newest meet first.
func (r *Repository) LifterHistory(ctx context.Context, name string) ([]LifterResult, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.slug, m.name, r.place, r.division, r.total_kg, r.points, r.event
		FROM meet_results r
		JOIN meets m ON m.id = r.meet_id
		WHERE lower(r.name) = lower($1)
		ORDER BY m.archived_at DESC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query lifter history: %w", err)
	}
	defer rows.Close()

	var history []LifterResult
	for rows.Next() {
		var lr LifterResult
		if err := rows.Scan(&lr.MeetSlug, &lr.MeetName, &lr.Place, &lr.Division,
			&lr.TotalKg, &lr.Points, &lr.Event); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		history = append(history, lr)
	}

	return history, rows.Err()
}
