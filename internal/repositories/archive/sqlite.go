package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/mafia/internal/models"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// ErrSummaryNotFound is returned when no summary exists for a game
var ErrSummaryNotFound = errors.New("summary not found")

const schema = `
CREATE TABLE IF NOT EXISTS game_summary (
	id TEXT PRIMARY KEY,
	game_id TEXT NOT NULL UNIQUE,
	winner TEXT NOT NULL,
	rounds INTEGER NOT NULL,
	player_count INTEGER NOT NULL,
	mafia_count INTEGER NOT NULL,
	finished_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS player_result (
	summary_id TEXT NOT NULL REFERENCES game_summary(id),
	player_id TEXT NOT NULL,
	player_name TEXT NOT NULL,
	role TEXT NOT NULL,
	survived INTEGER NOT NULL,
	death_round INTEGER NOT NULL,
	PRIMARY KEY (summary_id, player_id)
);
`

// Config holds configuration for the sqlite archive repository
type Config struct {
	// Path to the sqlite database file; ":memory:" for tests
	Path string
}

// summaryRow mirrors the game_summary table
type summaryRow struct {
	ID          string         `db:"id"`
	GameID      string         `db:"game_id"`
	Winner      string         `db:"winner"`
	Rounds      int            `db:"rounds"`
	PlayerCount int            `db:"player_count"`
	MafiaCount  int            `db:"mafia_count"`
	FinishedAt  sql.NullString `db:"finished_at"`
}

// resultRow mirrors the player_result table
type resultRow struct {
	SummaryID  string `db:"summary_id"`
	PlayerID   string `db:"player_id"`
	PlayerName string `db:"player_name"`
	Role       string `db:"role"`
	Survived   bool   `db:"survived"`
	DeathRound int    `db:"death_round"`
}

// sqliteRepository implements the Repository interface using sqlite
type sqliteRepository struct {
	db *sqlx.DB
}

// NewSQLite creates a new sqlite-backed archive repository and ensures
// the schema exists
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("database path cannot be empty")
	}

	db, err := sqlx.Connect("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &sqliteRepository{
		db: db,
	}, nil
}

// Close releases the database handle
func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

// SaveSummary persists a completed game summary and its player results
func (r *sqliteRepository) SaveSummary(ctx context.Context, input *SaveSummaryInput) error {
	if input == nil || input.Summary == nil {
		return errors.New("input and summary cannot be nil")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	s := input.Summary
	_, err = tx.ExecContext(ctx, `
		INSERT INTO game_summary (id, game_id, winner, rounds, player_count, mafia_count, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.GameID, string(s.Winner), s.Rounds, s.PlayerCount, s.MafiaCount, s.FinishedAt.UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return fmt.Errorf("failed to insert summary: %w", err)
	}

	for _, res := range s.Results {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO player_result (summary_id, player_id, player_name, role, survived, death_round)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID, res.PlayerID, res.PlayerName, string(res.Role), res.Survived, res.DeathRound)
		if err != nil {
			return fmt.Errorf("failed to insert player result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit summary: %w", err)
	}

	return nil
}

// GetSummary retrieves a summary by game ID
func (r *sqliteRepository) GetSummary(ctx context.Context, input *GetSummaryInput) (*models.GameSummary, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	var row summaryRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, game_id, winner, rounds, player_count, mafia_count, finished_at
		FROM game_summary WHERE game_id = ?`, input.GameID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	summary, err := r.hydrate(ctx, &row)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// ListSummaries retrieves summaries of completed games, newest first
func (r *sqliteRepository) ListSummaries(ctx context.Context, input *ListSummariesInput) (*ListSummariesOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}

	query := `
		SELECT id, game_id, winner, rounds, player_count, mafia_count, finished_at
		FROM game_summary ORDER BY finished_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []summaryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	summaries := make([]*models.GameSummary, 0, len(rows))
	for i := range rows {
		summary, err := r.hydrate(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return &ListSummariesOutput{
		Summaries: summaries,
	}, nil
}

// parseDBTime parses the UTC timestamp format the repository writes
func parseDBTime(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04:05", value, time.UTC)
}

// hydrate converts a summary row and its player results into a model
func (r *sqliteRepository) hydrate(ctx context.Context, row *summaryRow) (*models.GameSummary, error) {
	var resultRows []resultRow
	err := r.db.SelectContext(ctx, &resultRows, `
		SELECT summary_id, player_id, player_name, role, survived, death_round
		FROM player_result WHERE summary_id = ? ORDER BY player_id`, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player results: %w", err)
	}

	summary := &models.GameSummary{
		ID:          row.ID,
		GameID:      row.GameID,
		Winner:      models.Winner(row.Winner),
		Rounds:      row.Rounds,
		PlayerCount: row.PlayerCount,
		MafiaCount:  row.MafiaCount,
	}

	if row.FinishedAt.Valid {
		finishedAt, err := parseDBTime(row.FinishedAt.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse finished_at: %w", err)
		}
		summary.FinishedAt = finishedAt
	}

	for _, res := range resultRows {
		summary.Results = append(summary.Results, models.PlayerResult{
			PlayerID:   res.PlayerID,
			PlayerName: res.PlayerName,
			Role:       models.Role(res.Role),
			Survived:   res.Survived,
			DeathRound: res.DeathRound,
		})
	}

	return summary, nil
}
