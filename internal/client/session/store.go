package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/jaehyuk-choi/portfolio-auth/internal/client/migrations"
	"github.com/jaehyuk-choi/portfolio-auth/internal/dbx"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Store reads and writes the persisted session. All pair mutations run inside
// a single transaction.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the session database at path and applies
// migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("session migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the persisted session, or nil when logged out. Partial state
// (only one of token/user present, or an unreadable user record) is untrusted:
// it is cleared and reported as logged out.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	token, haveToken, err := s.get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	userJSON, haveUser, err := s.get(ctx, keyUser)
	if err != nil {
		return nil, err
	}

	if !haveToken && !haveUser {
		return nil, nil
	}
	if !haveToken || !haveUser {
		if err := s.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var user User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		if err := s.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &Session{Token: token, User: user}, nil
}

// Save persists the token and user summary as one atomic pair write.
func (s *Store) Save(ctx context.Context, token string, user User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, token); err != nil {
			return err
		}
		return set(ctx, tx, keyUser, string(userJSON))
	})
}

// Clear removes both fields of the session pair in one transaction.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM metadata WHERE name IN (?, ?)`, keyToken, keyUser)
		return err
	})
}

func (s *Store) get(ctx context.Context, name string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE name = ?`, name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("db error: %w", err)
	}
	return value, true, nil
}

func set(ctx context.Context, tx dbx.DBTX, name, value string) error {
	query :=
		`INSERT INTO metadata (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value
		 `

	if _, err := tx.ExecContext(ctx, query, name, value); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
