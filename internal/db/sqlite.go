package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/video-stream/reader/internal/translate"
)

// Database is a SQLite-backed translate.Dictionary.
type Database struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the dictionary at path and applies the schema.
func NewSQLite(path string) (*Database, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_journal_mode=WAL&_busy_timeout=5000"
	}
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// Each connection to :memory: is a separate database.
	if strings.Contains(path, ":memory:") {
		sqlDB.SetMaxOpenConns(1)
	}

	d := &Database{db: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate dictionary: %w", err)
	}
	return d, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS words (
		key TEXT PRIMARY KEY,
		word TEXT NOT NULL,
		translation TEXT NOT NULL,
		definition TEXT NOT NULL DEFAULT '',
		example TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS sentences (
		key TEXT PRIMARY KEY,
		original TEXT NOT NULL,
		translation TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := d.db.Exec(schema); err != nil {
		return err
	}
	// Dictionaries created before examples were stored lack the column.
	_, err := d.db.Exec(`ALTER TABLE words ADD COLUMN example TEXT NOT NULL DEFAULT ''`)
	if err != nil && !strings.Contains(err.Error(), "duplicate column") {
		return err
	}
	return nil
}

// Seed inserts words and sentences, keeping rows that already exist. It
// returns how many rows were added.
func (d *Database) Seed(ctx context.Context, words []translate.WordTranslation, sentences []translate.SentenceTranslation) (int64, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var added int64
	for _, w := range words {
		n, err := execBuilder(ctx, tx, sq.Insert("words").Options("OR IGNORE").
			Columns("key", "word", "translation", "definition", "example").
			Values(translate.NormalizeKey(w.Word), w.Word, w.Translation, w.Definition, w.Example))
		if err != nil {
			return 0, fmt.Errorf("seed word %q: %w", w.Word, err)
		}
		added += n
	}
	for _, s := range sentences {
		n, err := execBuilder(ctx, tx, sq.Insert("sentences").Options("OR IGNORE").
			Columns("key", "original", "translation").
			Values(translate.NormalizeKey(s.Original), s.Original, s.Translation))
		if err != nil {
			return 0, fmt.Errorf("seed sentence %q: %w", s.Original, err)
		}
		added += n
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

func execBuilder(ctx context.Context, tx *sql.Tx, b sq.InsertBuilder) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Lookup implements translate.Dictionary.
func (d *Database) Lookup(ctx context.Context, kind translate.Kind, key string) (translate.Result, bool, error) {
	if kind == translate.KindSentence {
		return d.lookupSentence(ctx, key)
	}
	return d.lookupWord(ctx, key)
}

func (d *Database) lookupWord(ctx context.Context, key string) (translate.Result, bool, error) {
	query, args, err := sq.Select("word", "translation", "definition", "example").
		From("words").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return translate.Result{}, false, err
	}

	var w translate.WordTranslation
	err = d.db.QueryRowContext(ctx, query, args...).Scan(&w.Word, &w.Translation, &w.Definition, &w.Example)
	if errors.Is(err, sql.ErrNoRows) {
		return translate.Result{}, false, nil
	}
	if err != nil {
		return translate.Result{}, false, fmt.Errorf("query word: %w", err)
	}
	return translate.WordResult(w), true, nil
}

func (d *Database) lookupSentence(ctx context.Context, key string) (translate.Result, bool, error) {
	query, args, err := sq.Select("original", "translation").
		From("sentences").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return translate.Result{}, false, err
	}

	var s translate.SentenceTranslation
	err = d.db.QueryRowContext(ctx, query, args...).Scan(&s.Original, &s.Translation)
	if errors.Is(err, sql.ErrNoRows) {
		return translate.Result{}, false, nil
	}
	if err != nil {
		return translate.Result{}, false, fmt.Errorf("query sentence: %w", err)
	}
	return translate.SentenceResult(s), true, nil
}

// WordCount reports how many words the dictionary holds.
func (d *Database) WordCount(ctx context.Context) (int, error) {
	var count int
	err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM words").Scan(&count)
	return count, err
}

// Bootstrap opens the dictionary at path and seeds it with the built-in
// tables, subtitle vocabulary included.
func Bootstrap(ctx context.Context, path string) (*Database, error) {
	d, err := NewSQLite(path)
	if err != nil {
		return nil, err
	}
	words := append(append([]translate.WordTranslation{}, translate.DefaultWords...), translate.SubtitleWords...)
	if _, err := d.Seed(ctx, words, translate.DefaultSentences); err != nil {
		d.Close()
		return nil, fmt.Errorf("seed dictionary: %w", err)
	}
	return d, nil
}
