package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// workoutColumns lists every column of the workouts table with its
// declaration. Columns added here are created on existing databases with
// ALTER TABLE, so rows written by older versions keep loading; every column
// beyond id and workout_date stays nullable for the same reason.
//
//nolint:gochecknoglobals // static schema description.
var workoutColumns = []struct {
	name string
	decl string
}{
	{name: "kind", decl: "TEXT"},
	{name: "exercise", decl: "TEXT"},
	{name: "sets", decl: "INTEGER"},
	{name: "reps", decl: "INTEGER"},
	{name: "muscle_groups", decl: "TEXT"},
	{name: "duration_minutes", decl: "REAL"},
	{name: "speed_kmh", decl: "REAL"},
	{name: "incline_percent", decl: "INTEGER"},
	{name: "distance_km", decl: "REAL"},
}

// migrate applies the embedded schema and adds any columns introduced after
// the database was first created.
func (db *Database) migrate(ctx context.Context) error {
	start := time.Now()

	if _, err := db.ReadWrite.ExecContext(ctx, schemaDefinition); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	existing, err := db.tableColumns(ctx, "workouts")
	if err != nil {
		return fmt.Errorf("query workouts columns: %w", err)
	}

	for _, column := range workoutColumns {
		if existing[column.name] {
			continue
		}
		addSQL := fmt.Sprintf("ALTER TABLE workouts ADD COLUMN %s %s", column.name, column.decl)
		db.logger.LogAttrs(ctx, slog.LevelInfo, "adding column", slog.String("query", addSQL))
		if _, err = db.ReadWrite.ExecContext(ctx, addSQL); err != nil {
			return fmt.Errorf("add column %s: %w", column.name, err)
		}
	}

	db.logger.LogAttrs(ctx, slog.LevelInfo, "migrated database", slog.Duration("duration", time.Since(start)))

	return nil
}

// tableColumns returns the set of column names of the given table.
func (db *Database) tableColumns(ctx context.Context, table string) (map[string]bool, error) {
	rows, err := db.ReadWrite.QueryContext(ctx,
		"SELECT name FROM PRAGMA_TABLE_INFO(:table_name)", sql.Named("table_name", table))
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			db.logger.Error("could not close rows", slog.Any("error", closeErr))
		}
	}()

	columns := make(map[string]bool)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		columns[name] = true
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return columns, nil
}
