// Package introspect discovers dictionary records from a live PostgreSQL
// warehouse. The information_schema views supply names, types and
// constraints; column comments supply descriptions. Discovery produces the
// same core.TableRecord batch the file loaders do, so a discovered schema
// can be validated or exported like any hand-written dictionary.
package introspect

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver

	"github.com/leapstack-labs/dictlint/pkg/core"
)

// Config holds warehouse connection parameters.
type Config struct {
	Host     string
	Port     int
	Database string
	Schema   string
	Username string
	Password string
	SSLMode  string
}

// Introspector reads table and column metadata from a PostgreSQL warehouse.
type Introspector struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an Introspector. Connect must be called before discovery.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Introspector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Introspector{logger: logger}
}

// NewWithDB wraps an existing database handle. The caller keeps ownership
// of the handle.
func NewWithDB(db *sql.DB, logger *slog.Logger) *Introspector {
	i := New(logger)
	i.db = db
	return i
}

// Connect establishes the warehouse connection.
func (i *Introspector) Connect(ctx context.Context, cfg Config) error {
	dsn := buildDSN(cfg)

	i.logger.Debug("connecting to warehouse",
		slog.String("host", cfg.Host), slog.String("database", cfg.Database))

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open warehouse connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping warehouse: %w", err)
	}

	i.db = db
	return nil
}

// Close closes the warehouse connection.
func (i *Introspector) Close() error {
	if i.db != nil {
		return i.db.Close()
	}
	return nil
}

// buildDSN constructs a key=value PostgreSQL connection string.
func buildDSN(cfg Config) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = 5432
	}
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%d dbname=%s sslmode=%s",
		host, port, cfg.Database, sslmode)
	if cfg.Username != "" {
		dsn += fmt.Sprintf(" user=%s", cfg.Username)
	}
	if cfg.Password != "" {
		dsn += fmt.Sprintf(" password=%s", cfg.Password)
	}
	return dsn
}

// DiscoverSchema reads every base table in the schema and assembles
// dictionary records for them. Four batch queries cover tables, columns,
// primary keys and foreign keys regardless of schema size.
func (i *Introspector) DiscoverSchema(ctx context.Context, schema string) ([]core.TableRecord, error) {
	if i.db == nil {
		return nil, fmt.Errorf("database connection not established")
	}
	if schema == "" {
		schema = "public"
	}

	tables, err := i.discoverTables(ctx, schema)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, nil
	}

	columnsByTable, err := i.discoverColumns(ctx, schema)
	if err != nil {
		return nil, err
	}
	primaryKeys, err := i.discoverPrimaryKeys(ctx, schema)
	if err != nil {
		return nil, err
	}
	foreignKeys, err := i.discoverForeignKeys(ctx, schema)
	if err != nil {
		return nil, err
	}

	for idx := range tables {
		name := tables[idx].Name
		columns := columnsByTable[name]
		for c := range columns {
			if primaryKeys[name][columns[c].Name] {
				columns[c].PrimaryKey = true
			}
			if target, ok := foreignKeys[name][columns[c].Name]; ok {
				columns[c].ForeignKey = true
				columns[c].FKReference = target
			}
		}
		tables[idx].Columns = columns
	}

	i.logger.Info("schema discovered",
		slog.String("schema", schema), slog.Int("tables", len(tables)))
	return tables, nil
}

func (i *Introspector) discoverTables(ctx context.Context, schema string) ([]core.TableRecord, error) {
	query := `
		SELECT
			t.table_name,
			COALESCE(obj_description(format('%I.%I', t.table_schema, t.table_name)::regclass, 'pg_class'), '')
		FROM information_schema.tables t
		WHERE t.table_schema = $1
		  AND t.table_type = 'BASE TABLE'
		ORDER BY t.table_name
	`

	rows, err := i.db.QueryContext(ctx, query, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to discover tables: %w", err)
	}
	defer rows.Close()

	var tables []core.TableRecord
	for rows.Next() {
		var name, comment string
		if err := rows.Scan(&name, &comment); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		tables = append(tables, core.TableRecord{
			Name:           name,
			EnglishName:    comment,
			SuffixCategory: core.DeriveSuffix(name),
		})
	}
	return tables, rows.Err()
}

func (i *Introspector) discoverColumns(ctx context.Context, schema string) (map[string][]core.ColumnRecord, error) {
	query := `
		SELECT
			c.table_name,
			c.column_name,
			c.data_type,
			c.numeric_precision,
			c.numeric_scale,
			c.character_maximum_length,
			c.is_nullable,
			COALESCE(col_description(format('%I.%I', c.table_schema, c.table_name)::regclass, c.ordinal_position), '')
		FROM information_schema.columns c
		WHERE c.table_schema = $1
		ORDER BY c.table_name, c.ordinal_position
	`

	rows, err := i.db.QueryContext(ctx, query, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to discover columns: %w", err)
	}
	defer rows.Close()

	columnsByTable := make(map[string][]core.ColumnRecord)
	for rows.Next() {
		var (
			tableName, columnName, dataType, nullable, description string
			numPrecision, numScale, charLength                     sql.NullInt64
		)
		if err := rows.Scan(&tableName, &columnName, &dataType,
			&numPrecision, &numScale, &charLength, &nullable, &description); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}

		col := core.ColumnRecord{
			Name:        columnName,
			DataType:    mapDataType(dataType),
			Nullability: core.ParseNullability(nullable),
			Description: description,
		}
		switch {
		case numPrecision.Valid:
			col.Precision = intPtr(int(numPrecision.Int64))
			if numScale.Valid {
				col.Scale = intPtr(int(numScale.Int64))
			}
		case charLength.Valid:
			col.Precision = intPtr(int(charLength.Int64))
		}

		columnsByTable[tableName] = append(columnsByTable[tableName], col)
	}
	return columnsByTable, rows.Err()
}

func (i *Introspector) discoverPrimaryKeys(ctx context.Context, schema string) (map[string]map[string]bool, error) {
	query := `
		SELECT kcu.table_name, kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
		  ON tc.constraint_name = kcu.constraint_name
		 AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'PRIMARY KEY'
		  AND tc.table_schema = $1
	`

	rows, err := i.db.QueryContext(ctx, query, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to discover primary keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]map[string]bool)
	for rows.Next() {
		var tableName, columnName string
		if err := rows.Scan(&tableName, &columnName); err != nil {
			return nil, fmt.Errorf("failed to scan primary key: %w", err)
		}
		if keys[tableName] == nil {
			keys[tableName] = make(map[string]bool)
		}
		keys[tableName][columnName] = true
	}
	return keys, rows.Err()
}

func (i *Introspector) discoverForeignKeys(ctx context.Context, schema string) (map[string]map[string]string, error) {
	query := `
		SELECT tc.table_name, kcu.column_name, ccu.table_name AS references_table
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
		  ON tc.constraint_name = kcu.constraint_name
		 AND tc.table_schema = kcu.table_schema
		JOIN information_schema.constraint_column_usage ccu
		  ON ccu.constraint_name = tc.constraint_name
		 AND ccu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
		  AND tc.table_schema = $1
		ORDER BY tc.table_name, kcu.column_name
	`

	rows, err := i.db.QueryContext(ctx, query, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to discover foreign keys: %w", err)
	}
	defer rows.Close()

	refs := make(map[string]map[string]string)
	for rows.Next() {
		var tableName, columnName, target string
		if err := rows.Scan(&tableName, &columnName, &target); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key: %w", err)
		}
		if refs[tableName] == nil {
			refs[tableName] = make(map[string]string)
		}
		refs[tableName][columnName] = target
	}
	return refs, rows.Err()
}

// mapDataType maps PostgreSQL type names onto the coarse dictionary classes.
// The verbose information_schema spellings are handled here; everything else
// goes through the shared parser.
func mapDataType(raw string) core.DataType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "character varying", "character", "bpchar":
		return core.TypeVarchar
	case "timestamp without time zone", "timestamp with time zone",
		"time without time zone", "time with time zone":
		return core.TypeDate
	case "double precision", "money":
		return core.TypeNumber
	}
	return core.ParseDataType(raw)
}

func intPtr(n int) *int { return &n }
