// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/chartkitchen/internal/metrics"
	"github.com/tomtom215/chartkitchen/internal/recipe"
)

// sampleSeed keeps reservoir samples repeatable across loads.
const sampleSeed = 42

// DuckDBSource samples files with an in-memory DuckDB instance.
// It is safe for concurrent use.
type DuckDBSource struct {
	conn   *sql.DB
	cfg    Config
	logger zerolog.Logger
}

// column is one DESCRIBE row.
type column struct {
	name     string
	duckType string
}

// NewDuckDBSource opens an in-memory DuckDB for dataset sampling.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewDuckDBSource(cfg Config, logger zerolog.Logger) (*DuckDBSource, error) {
	if cfg.SampleRows < 1 {
		return nil, fmt.Errorf("dataset sample rows must be positive, got %d", cfg.SampleRows)
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "512MB"
	}

	connStr := fmt.Sprintf(":memory:?threads=%d&max_memory=%s&autoinstall_known_extensions=false", threads, maxMemory)
	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	if err := conn.Ping(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to duckdb: %w", err)
	}

	return &DuckDBSource{
		conn:   conn,
		cfg:    cfg,
		logger: logger.With().Str("component", "dataset").Logger(),
	}, nil
}

// Close releases the DuckDB connection.
func (s *DuckDBSource) Close() error {
	return s.conn.Close()
}

// Load samples the dataset at path, relative to the configured root.
func (s *DuckDBSource) Load(ctx context.Context, path string) (*recipe.Dataset, error) {
	start := time.Now()
	format := Format("unknown")

	ds, err := func() (*recipe.Dataset, error) {
		resolved, err := ResolvePath(s.cfg.RootDir, path)
		if err != nil {
			return nil, err
		}
		f, err := FormatFor(resolved)
		if err != nil {
			return nil, err
		}
		format = f

		if s.cfg.QueryTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.cfg.QueryTimeout)
			defer cancel()
		}
		return s.load(ctx, resolved, format)
	}()

	metrics.RecordDatasetLoad(string(format), time.Since(start), errorReason(err), err)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("dataset load failed")
		return nil, err
	}

	s.logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("columns", len(ds.Columns)).
		Int("rows", ds.RowCount).
		Dur("duration", time.Since(start)).
		Msg("dataset sampled")
	return ds, nil
}

func (s *DuckDBSource) load(ctx context.Context, path string, format Format) (*recipe.Dataset, error) {
	rel := readerExpr(path, format)

	cols, err := s.describe(ctx, rel)
	if err != nil {
		return nil, err
	}

	var rowCount int
	if err := s.conn.QueryRowContext(ctx, "SELECT count(*) FROM "+rel).Scan(&rowCount); err != nil {
		return nil, fmt.Errorf("count rows: %w", err)
	}

	values, err := s.sample(ctx, rel, cols, rowCount)
	if err != nil {
		return nil, err
	}

	ds := &recipe.Dataset{
		Name:     filepath.Base(path),
		RowCount: rowCount,
		Columns:  make([]recipe.Column, len(cols)),
	}
	for i, c := range cols {
		ds.Columns[i] = recipe.Column{
			Name:         c.name,
			DeclaredType: DeclaredTypeFor(c.duckType),
			Values:       values[i],
		}
	}
	return ds, nil
}

func (s *DuckDBSource) describe(ctx context.Context, rel string) ([]column, error) {
	rows, err := s.conn.QueryContext(ctx, "DESCRIBE SELECT * FROM "+rel)
	if err != nil {
		return nil, fmt.Errorf("describe dataset: %w", err)
	}
	defer closeQuietly(rows)

	var cols []column
	for rows.Next() {
		var c column
		var null, key, def, extra sql.NullString
		if err := rows.Scan(&c.name, &c.duckType, &null, &key, &def, &extra); err != nil {
			return nil, fmt.Errorf("scan column description: %w", err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describe dataset: %w", err)
	}
	return cols, nil
}

// sample reads up to SampleRows rows and returns the non-null values of each
// column.
func (s *DuckDBSource) sample(ctx context.Context, rel string, cols []column, rowCount int) ([][]any, error) {
	values := make([][]any, len(cols))
	if len(cols) == 0 || rowCount == 0 {
		return values, nil
	}

	selects := make([]string, len(cols))
	for i, c := range cols {
		selects[i] = selectExpr(c)
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(selects, ", "), rel)
	if rowCount > s.cfg.SampleRows {
		query += fmt.Sprintf(" USING SAMPLE reservoir(%d ROWS) REPEATABLE (%d)", s.cfg.SampleRows, sampleSeed)
	} else {
		query += fmt.Sprintf(" LIMIT %d", s.cfg.SampleRows)
	}

	rows, err := s.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sample dataset: %w", err)
	}
	defer closeQuietly(rows)

	dest := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range dest {
		ptrs[i] = &dest[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan sample row: %w", err)
		}
		for i, v := range dest {
			if v = normalizeValue(v); v != nil {
				values[i] = append(values[i], v)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sample dataset: %w", err)
	}
	return values, nil
}

// selectExpr casts types the classifier cannot consume directly.
func selectExpr(c column) string {
	ident := quoteIdent(c.name)
	t := strings.ToUpper(c.duckType)
	switch {
	case strings.HasPrefix(t, "DECIMAL"), strings.HasPrefix(t, "NUMERIC"),
		t == "HUGEINT", t == "UHUGEINT":
		return fmt.Sprintf("CAST(%s AS DOUBLE)", ident)
	case DeclaredTypeFor(t) == recipe.DeclaredText, strings.HasPrefix(t, "ENUM"), t == "TIME", t == "TIMETZ",
		t == "TIME WITH TIME ZONE":
		return fmt.Sprintf("CAST(%s AS VARCHAR)", ident)
	}
	return ident
}

func readerExpr(path string, format Format) string {
	lit := quoteLiteral(path)
	switch format {
	case FormatTSV:
		return fmt.Sprintf("read_csv_auto(%s, delim='\\t')", lit)
	case FormatParquet:
		return fmt.Sprintf("read_parquet(%s)", lit)
	case FormatJSON:
		return fmt.Sprintf("read_json_auto(%s)", lit)
	case FormatNDJSON:
		return fmt.Sprintf("read_json_auto(%s, format='newline_delimited')", lit)
	default:
		return fmt.Sprintf("read_csv_auto(%s)", lit)
	}
}

// normalizeValue converts driver values to the scalar kinds the classifier
// understands: string, float64, int64, bool and time.Time.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case []byte:
		return string(x)
	case int64, float64, string, bool, time.Time:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
