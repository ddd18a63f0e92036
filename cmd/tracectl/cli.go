package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/WeAreTheArtMakers/mindTrace/internal/service/seed"
)

// newCLIApp creates the CLI application with all commands. open is called
// lazily so that help and flag errors never touch the database.
func newCLIApp(out io.Writer, open opener, version string) *cli.App {
	app := &cli.App{
		Name:    "tracectl",
		Usage:   "Operate a MindTrace database",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, EnvVars: []string{"CONFIG_PATH"}, Usage: "Path to the YAML config file"},
		},
		Writer: out,
		Commands: []*cli.Command{
			migrateCmd(out, open),
			seedCmd(out, open),
			statsCmd(out, open),
			reportCmd(out, open),
		},
	}
	// Errors are returned to main instead of exiting inside the library.
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// withBackend opens a backend for the duration of fn.
func withBackend(c *cli.Context, open opener, fn func(b backend) error) error {
	b, err := open(c.Context, c.String("config"))
	if err != nil {
		return err
	}
	defer b.Close()
	return fn(b)
}

func migrateCmd(out io.Writer, open opener) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply pending migrations",
				Action: func(c *cli.Context) error {
					return withBackend(c, open, func(b backend) error {
						rows, err := b.MigrateUp(c.Context)
						if err != nil {
							return fmt.Errorf("migrate up: %w", err)
						}
						return outputJSON(out, map[string]any{"applied": nonNilRows(rows)})
					})
				},
			},
			{
				Name:  "status",
				Usage: "Show migration status",
				Action: func(c *cli.Context) error {
					return withBackend(c, open, func(b backend) error {
						rows, err := b.MigrateStatus(c.Context)
						if err != nil {
							return fmt.Errorf("migrate status: %w", err)
						}
						return outputJSON(out, map[string]any{"migrations": nonNilRows(rows)})
					})
				},
			},
		},
	}
}

func seedCmd(out io.Writer, open opener) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Insert starter traces from a YAML file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "Seed YAML file"},
			&cli.BoolFlag{Name: "force", Usage: "Insert even when traces already exist"},
		},
		Action: func(c *cli.Context) error {
			file, err := seed.LoadFile(c.String("file"))
			if err != nil {
				return err
			}
			return withBackend(c, open, func(b backend) error {
				res, err := b.Seed(c.Context, file.Entries, seed.Options{Force: c.Bool("force")})
				if err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				return outputJSON(out, res)
			})
		},
	}
}

func statsCmd(out io.Writer, open opener) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print trace, reaction and translation counts",
		Action: func(c *cli.Context) error {
			return withBackend(c, open, func(b backend) error {
				s, err := b.Stats(c.Context)
				if err != nil {
					return err
				}
				return outputJSON(out, s)
			})
		},
	}
}

func reportCmd(out io.Writer, open opener) *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Print the analytics report",
		Action: func(c *cli.Context) error {
			return withBackend(c, open, func(b backend) error {
				report, err := b.Report(c.Context)
				if err != nil {
					return fmt.Errorf("build report: %w", err)
				}
				return outputJSON(out, report)
			})
		},
	}
}

func outputJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func nonNilRows(rows []migrationRow) []migrationRow {
	if rows == nil {
		return []migrationRow{}
	}
	return rows
}
