// Package auth manages the operator accounts allowed to use the store.
//
// Accounts live in a SQLite database, separate from the inventory and the
// ledger, with passwords hashed by bcrypt.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

var (
	// ErrUserExists is returned when registering a username already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrEmptyCredentials is returned for a blank username or password.
	ErrEmptyCredentials = errors.New("username and password are required")
	// ErrInvalidCredentials is returned for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Manager registers and authenticates users.
type Manager struct {
	db   *sql.DB
	cost int // bcrypt cost
}

// Open opens, or creates, the user database at path.
func Open(ctx context.Context, path string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		hashed_password TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create users table: %w", err)
	}
	return &Manager{db: db, cost: bcrypt.DefaultCost}, nil
}

// Close releases the database.
func (m *Manager) Close() error { return m.db.Close() }

// Register creates a new user. The username is trimmed, the password is
// used as is.
func (m *Manager) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	res, err := m.db.ExecContext(ctx,
		`INSERT INTO users (username, hashed_password) VALUES (?, ?) ON CONFLICT(username) DO NOTHING`,
		username, string(hash))
	if err != nil {
		return fmt.Errorf("insert user %q: %w", username, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert user %q: %w", username, err)
	}
	if n == 0 {
		return fmt.Errorf("cannot register %q: %w", username, ErrUserExists)
	}
	return nil
}

// Authenticate checks a username and password pair.
func (m *Manager) Authenticate(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}
	var hash string
	err := m.db.QueryRowContext(ctx, `SELECT hashed_password FROM users WHERE username = ?`, username).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("select user %q: %w", username, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Users returns the number of registered users.
func (m *Manager) Users(ctx context.Context) (int, error) {
	var n int
	if err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
