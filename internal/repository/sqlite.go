package repository

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"gincana/internal/models"
)

// Repository provides data access methods backed by SQLite. The tables
// mirror the event's stored collections: users, custom_games, rounds, and
// settings. There are deliberately no foreign keys: referential integrity
// between rounds and catalogs is not enforced, and a round referencing a
// removed game simply loses its derived display fields on read.
type Repository struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and runs migrations.
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		return nil, err
	}
	return repo, nil
}

// NewWithDB wraps an existing database handle. Tests use this with sqlmock.
func NewWithDB(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS custom_games (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			team_winner_id TEXT NOT NULL,
			participants TEXT NOT NULL,
			round_number INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			created_by TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_game ON rounds(game_id)`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_team ON rounds(team_winner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	// Default settings. base_url is set by app startup with the detected
	// LAN address, so it is not seeded here.
	defaultSettings := map[string]string{
		"event_name": "Gincana da Unidade",
	}
	for key, value := range defaultSettings {
		if _, err := r.db.Exec(`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`, key, value); err != nil {
			return err
		}
	}

	return nil
}

// ==================== Game Methods ====================

// ListCustomGames returns persisted custom games in insertion order.
func (r *Repository) ListCustomGames(ctx context.Context) ([]models.Game, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM custom_games ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		g := models.Game{IsCustom: true}
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// CreateCustomGame persists a custom game.
func (r *Repository) CreateCustomGame(ctx context.Context, game models.Game) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO custom_games (id, name) VALUES (?, ?)`, game.ID, game.Name)
	return err
}

// DeleteCustomGame removes a custom game by id. Built-in game ids never
// appear in this table, so deleting one is a no-op here.
func (r *Repository) DeleteCustomGame(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM custom_games WHERE id = ?`, id)
	return err
}

// ==================== Round Methods ====================

// ListRounds returns all rounds in insertion order.
func (r *Repository) ListRounds(ctx context.Context) ([]models.Round, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, game_id, team_winner_id, participants, round_number, created_at, created_by
		FROM rounds ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []models.Round
	for rows.Next() {
		var rd models.Round
		if err := rows.Scan(&rd.ID, &rd.GameID, &rd.TeamWinnerID, &rd.Participants, &rd.RoundNumber, &rd.CreatedAt, &rd.CreatedBy); err != nil {
			return nil, err
		}
		rounds = append(rounds, rd)
	}
	return rounds, rows.Err()
}

// CreateRound persists a round.
func (r *Repository) CreateRound(ctx context.Context, round models.Round) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rounds (id, game_id, team_winner_id, participants, round_number, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		round.ID, round.GameID, round.TeamWinnerID, round.Participants, round.RoundNumber, round.CreatedAt, round.CreatedBy)
	return err
}

// DeleteRound removes a round by id. Remaining rounds keep their numbers.
func (r *Repository) DeleteRound(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rounds WHERE id = ?`, id)
	return err
}

// DeleteRoundsByGame removes every round recorded for a game and returns how
// many were deleted. Used by the custom-game delete cascade.
func (r *Repository) DeleteRoundsByGame(ctx context.Context, gameID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rounds WHERE game_id = ?`, gameID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ==================== User Methods ====================

// GetUserByUsername retrieves a user by exact username.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, email, password, role, created_at
		FROM users WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserExists reports whether a user with the given username or email exists.
func (r *Repository) UserExists(ctx context.Context, username, email string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM users WHERE username = ? OR email = ?`, username, email).Scan(&count)
	return count > 0, err
}

// CreateUser persists a user account.
func (r *Repository) CreateUser(ctx context.Context, user models.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.Email, user.Password, user.Role, user.CreatedAt)
	return err
}

// ==================== Settings Methods ====================

// GetSetting retrieves a setting value by key.
func (r *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return value, err
}

// SetSetting stores a setting value, replacing any existing one.
func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}
