package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/ogurasousui/staffing-engine/internal/platform/config"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath    string
		migrationsDir string
	)

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply staffing-engine database migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	root.PersistentFlags().StringVar(&migrationsDir, "dir", "assets/migrations", "directory containing migration files")

	action := func(name string, fn func(*migrate.Migrate, *cobra.Command) error) *cobra.Command {
		return &cobra.Command{
			Use:   name,
			Short: name + " migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := open(configPath, migrationsDir)
				if err != nil {
					return err
				}
				defer m.Close()

				if err := fn(m, cmd); err != nil {
					return fmt.Errorf("migration %s failed: %w", name, err)
				}
				cmd.Printf("migration %s completed\n", name)
				return nil
			},
		}
	}

	root.AddCommand(
		action("up", func(m *migrate.Migrate, _ *cobra.Command) error { return ignoreNoChange(m.Up()) }),
		action("down", func(m *migrate.Migrate, _ *cobra.Command) error { return ignoreNoChange(m.Down()) }),
		action("drop", func(m *migrate.Migrate, _ *cobra.Command) error { return m.Drop() }),
		action("version", printVersion),
	)
	return root
}

func open(configPath, dir string) (*migrate.Migrate, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(effectiveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve path for %s: %w", dir, err)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(absDir), cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return m, nil
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func printVersion(m *migrate.Migrate, cmd *cobra.Command) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		cmd.Println("no migration applied")
		return nil
	}
	if err != nil {
		return err
	}
	cmd.Printf("version=%d dirty=%t\n", version, dirty)
	return nil
}
