package tokenstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const (
	accessTokenKey = "access_token"

	createTableQuery = `CREATE TABLE IF NOT EXISTS kv_storage (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`
	selectQuery = `SELECT value FROM kv_storage WHERE key = ?;`
	upsertQuery = `INSERT INTO kv_storage (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;`
	deleteQuery = `DELETE FROM kv_storage WHERE key = ?;`
)

// Provider - долговременное хранение токена доступа между перезапусками
type Provider interface {
	Load(ctx context.Context) (token string, err error)
	Save(ctx context.Context, token string) error
	Remove(ctx context.Context) error
	Close() error
}

func Open(path string) (Provider, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("не указан путь к хранилищу токена")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка открытия хранилища токена")
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "хранилище токена недоступно")
	}
	if _, err = db.Exec(createTableQuery); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ошибка создания таблицы хранилища токена")
	}
	return &impl{db: db}, nil
}

type impl struct {
	db *sql.DB
}

func (i *impl) Load(ctx context.Context) (string, error) {
	var token string
	err := i.db.QueryRowContext(ctx, selectQuery, accessTokenKey).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", errors.Wrap(err, "ошибка чтения токена")
	}
	return token, nil
}

func (i *impl) Save(ctx context.Context, token string) error {
	if _, err := i.db.ExecContext(ctx, upsertQuery, accessTokenKey, token); err != nil {
		return errors.Wrap(err, "ошибка сохранения токена")
	}
	return nil
}

func (i *impl) Remove(ctx context.Context) error {
	if _, err := i.db.ExecContext(ctx, deleteQuery, accessTokenKey); err != nil {
		return errors.Wrap(err, "ошибка удаления токена")
	}
	return nil
}

func (i *impl) Close() error {
	return i.db.Close()
}
