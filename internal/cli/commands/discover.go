package commands

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/dictlint/internal/introspect"
	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DiscoverOptions holds connection options for the discover command.
type DiscoverOptions struct {
	Host     string
	Port     int
	Database string
	Schema   string
	Username string
	Password string
	SSLMode  string
	Out      string
}

// batchDocument is the YAML shape validate reads back.
type batchDocument struct {
	Tables []core.TableRecord `yaml:"tables"`
}

// NewDiscoverCommand creates the discover command.
func NewDiscoverCommand() *cobra.Command {
	opts := &DiscoverOptions{}
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Introspect a PostgreSQL schema into a dictionary batch",
		Long: `Connect to a PostgreSQL warehouse and derive dictionary records from its
information schema: tables, columns, types, nullability, keys and comments.

The output is a batch YAML file that validate accepts directly, so a fresh
schema can be brought under governance without hand-writing its dictionary.`,
		Example: `  # Discover the public schema to stdout
  dictlint discover --database edw --username governance

  # Discover a schema into a batch file
  dictlint discover --database edw --schema mart --out mart.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiscover(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Host, "host", "localhost", "Database host")
	cmd.Flags().IntVar(&opts.Port, "port", 5432, "Database port")
	cmd.Flags().StringVarP(&opts.Database, "database", "d", "", "Database name")
	cmd.Flags().StringVar(&opts.Schema, "schema", "public", "Schema to introspect")
	cmd.Flags().StringVarP(&opts.Username, "username", "U", "", "Database user")
	cmd.Flags().StringVar(&opts.Password, "password", "", "Database password (or set PGPASSWORD)")
	cmd.Flags().StringVar(&opts.SSLMode, "sslmode", "disable", "SSL mode")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Write the batch YAML to a file instead of stdout")
	_ = cmd.MarkFlagRequired("database")

	return cmd
}

func runDiscover(cmd *cobra.Command, opts *DiscoverOptions) error {
	c := NewCommandContext(cmd)
	r := c.Renderer

	password := opts.Password
	if password == "" {
		password = os.Getenv("PGPASSWORD")
	}

	intr := introspect.New(c.Logger)
	err := intr.Connect(cmd.Context(), introspect.Config{
		Host:     opts.Host,
		Port:     opts.Port,
		Database: opts.Database,
		Schema:   opts.Schema,
		Username: opts.Username,
		Password: password,
		SSLMode:  opts.SSLMode,
	})
	if err != nil {
		return err
	}
	defer func() { _ = intr.Close() }()

	tables, err := intr.DiscoverSchema(cmd.Context(), opts.Schema)
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		return fmt.Errorf("schema %q contains no tables", opts.Schema)
	}

	data, err := yaml.Marshal(batchDocument{Tables: tables})
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}

	if opts.Out == "" {
		r.Printf("%s", data)
		return nil
	}

	if err := os.WriteFile(opts.Out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Out, err)
	}

	columns := 0
	for _, t := range tables {
		columns += len(t.Columns)
	}
	r.Success(fmt.Sprintf("Discovered %d tables (%d columns) into %s", len(tables), columns, opts.Out))
	return nil
}
