package migration

import (
	"context"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strconv"

	"comptrack/internal/database"
)

//go:embed sql/V*.sql
var migrationFS embed.FS

// advisoryLockKey serializes concurrent migrators across replicas.
const advisoryLockKey = 824731052

var fileNamePattern = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_]+)\.sql$`)

type migrationFile struct {
	Version  int
	Name     string
	Path     string
	Checksum string
	SQL      string
}

// Run applies every embedded migration that is not yet recorded in
// schema_migrations. A version that was already applied with a different
// checksum aborts the run.
func Run(ctx context.Context, db database.DB) error {
	files, err := loadFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	if _, err := db.Exec(ctx, `SELECT pg_advisory_lock($1)`, advisoryLockKey); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	defer func() {
		if _, err := db.Exec(ctx, `SELECT pg_advisory_unlock($1)`, advisoryLockKey); err != nil {
			log.Printf("[Migration] release lock: %v", err)
		}
	}()

	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version     INT PRIMARY KEY,
			name        TEXT NOT NULL,
			checksum    TEXT NOT NULL,
			applied_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	for _, f := range files {
		if sum, ok := applied[f.Version]; ok {
			if sum != f.Checksum {
				return fmt.Errorf("migration V%d was modified after being applied", f.Version)
			}
			continue
		}

		tx, err := db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin migration V%d: %w", f.Version, err)
		}
		if _, err := tx.Exec(ctx, f.SQL); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("apply migration V%d (%s): %w", f.Version, f.Name, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
			f.Version, f.Name, f.Checksum,
		); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("record migration V%d: %w", f.Version, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit migration V%d: %w", f.Version, err)
		}
		log.Printf("[Migration] applied V%d__%s", f.Version, f.Name)
	}

	return nil
}

func loadFiles() ([]migrationFile, error) {
	entries, err := migrationFS.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	files := make([]migrationFile, 0, len(entries))
	seen := map[int]string{}
	for _, e := range entries {
		m := fileNamePattern.FindStringSubmatch(e.Name())
		if m == nil {
			return nil, fmt.Errorf("migration file %q does not match V<version>__<name>.sql", e.Name())
		}
		version, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("migration file %q: %w", e.Name(), err)
		}
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("duplicate migration version %d (%s and %s)", version, prev, e.Name())
		}
		seen[version] = e.Name()

		body, err := migrationFS.ReadFile("sql/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %q: %w", e.Name(), err)
		}
		sum := sha256.Sum256(body)
		files = append(files, migrationFile{
			Version:  version,
			Name:     m[2],
			Path:     e.Name(),
			Checksum: hex.EncodeToString(sum[:]),
			SQL:      string(body),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Version < files[j].Version })
	return files, nil
}

func appliedVersions(ctx context.Context, db database.DB) (map[int]string, error) {
	rows, err := db.Query(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := map[int]string{}
	for rows.Next() {
		var version int
		var checksum string
		if err := rows.Scan(&version, &checksum); err != nil {
			return nil, err
		}
		applied[version] = checksum
	}
	return applied, rows.Err()
}
