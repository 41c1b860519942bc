// Package library implements a search provider backed by a local SQLite
// catalog with an FTS5 index.
package library

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/agnivade/levenshtein"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/NeonJarbas/ovos-ocp-audio-plugin/internal/media"
)

const (
	appName    = "ocp"
	dbFileName = "library.db"
	providerID = "ocp-library"
	maxResults = 20
)

// Entry is one catalog item offered by the local library.
type Entry struct {
	Title     string
	Artist    string
	URI       string
	MediaType media.MediaType
}

// Provider answers search broadcasts from the local catalog.
type Provider struct {
	db *sql.DB
}

// Open opens (or creates) the catalog database. An empty dbPath selects the
// default XDG data location.
func Open(dbPath string) (*Provider, error) {
	if dbPath == "" {
		var err error
		dbPath, err = xdg.DataFile(filepath.Join(appName, dbFileName))
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Provider{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS catalog (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			artist TEXT NOT NULL DEFAULT '',
			uri TEXT NOT NULL,
			media_type TEXT NOT NULL DEFAULT 'music'
		);
		CREATE VIRTUAL TABLE IF NOT EXISTS catalog_fts USING fts5(
			search_text,
			catalog_id UNINDEXED
		);
	`)
	return err
}

// Close closes the catalog database.
func (p *Provider) Close() error {
	return p.db.Close()
}

// ID returns the provider identifier used in result diagnostics.
func (p *Provider) ID() string {
	return providerID
}

// Add inserts entries into the catalog and indexes them for search.
func (p *Provider) Add(ctx context.Context, entries ...Entry) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for _, e := range entries {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO catalog (title, artist, uri, media_type) VALUES (?, ?, ?, ?)`,
			e.Title, e.Artist, e.URI, e.MediaType.String())
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		searchText := strings.TrimSpace(e.Artist + " " + e.Title)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO catalog_fts (search_text, catalog_id) VALUES (?, ?)`,
			searchText, id); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Search answers a broadcast with catalog matches. The library only serves
// audio-oriented requests; other media types yield no results rather than
// an error.
func (p *Provider) Search(ctx context.Context, phrase string, mediaType media.MediaType) ([]media.Result, error) {
	switch mediaType {
	case media.Generic, media.Music, media.Audiobook, media.Podcast, media.Radio:
	default:
		return nil, nil
	}

	query := escapeFTSQuery(phrase)
	rows, err := p.db.QueryContext(ctx, `
		SELECT c.title, c.artist, c.uri, c.media_type, f.search_text
		FROM catalog_fts f
		JOIN catalog c ON c.id = f.catalog_id
		WHERE catalog_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, query, maxResults)
	if err != nil {
		// FTS syntax errors from odd input degrade to no results.
		return nil, nil //nolint:nilerr // malformed query is a no-match, not a failure
	}
	defer rows.Close()

	var results []media.Result
	for rows.Next() {
		var title, artist, uri, mediaTypeName, searchText string
		if err := rows.Scan(&title, &artist, &uri, &mediaTypeName, &searchText); err != nil {
			return nil, err
		}
		results = append(results, media.Result{
			ProviderID:      providerID,
			Title:           displayTitle(title, artist),
			URI:             uri,
			MatchConfidence: confidence(phrase, title, searchText),
			MediaType:       media.ParseMediaType(mediaTypeName),
			Playback:        media.PlaybackAudio,
		})
	}

	return results, rows.Err()
}

func displayTitle(title, artist string) string {
	if artist == "" {
		return title
	}
	return artist + " - " + title
}

// confidence scores how closely the phrase matches the indexed entry using
// edit distance against both the bare title and the full search text.
func confidence(phrase, title, searchText string) float64 {
	p := strings.ToLower(strings.TrimSpace(phrase))
	best := similarity(p, strings.ToLower(title))
	if s := similarity(p, strings.ToLower(searchText)); s > best {
		best = s
	}
	return best
}

func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 0.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// escapeFTSQuery wraps each word in quotes for FTS5 matching, with implicit
// AND between words.
func escapeFTSQuery(query string) string {
	words := strings.Fields(query)
	if len(words) == 0 {
		return `""`
	}

	quoted := make([]string, len(words))
	for i, word := range words {
		escaped := strings.ReplaceAll(word, `"`, `""`)
		quoted[i] = `"` + escaped + `"`
	}

	return strings.Join(quoted, " ")
}
