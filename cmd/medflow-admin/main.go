// medflow-admin is an operator CLI for database maintenance: migrations,
// development seeding and profile administration outside the HTTP surface.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/medflow/medflow/config"
	"github.com/medflow/medflow/internal/bootstrap"
	"github.com/medflow/medflow/internal/data"
	"github.com/medflow/medflow/internal/devseed"
	"github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/domain/model"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const defaultCommandTimeout = 5 * time.Minute

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrations,
		},
		"db-seed": {
			name:        "db-seed",
			description: "Run database migrations and seed development data",
			run:         runDBSeed,
		},
		"create-profile": {
			name:        "create-profile",
			description: "Provision a profile row for an identity provider subject",
			run:         runCreateProfile,
		},
		"set-role": {
			name:        "set-role",
			description: "Change the role of an existing profile",
			run:         runSetRole,
		},
		"list-profiles": {
			name:        "list-profiles",
			description: "List profiles, optionally filtered by role",
			run:         runListProfiles,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: medflow-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	for _, c := range commands() {
		if err := writef(os.Stdout, "  %-16s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

// withDatabase connects to the configured database, runs fn, and closes the
// handle. The context is interruptible and bounded by timeout.
func withDatabase(cmdCtx *commandContext, timeout time.Duration, fn func(context.Context, *sql.DB) error) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("db close failed", "error", closeErr)
		}
	}()

	return fn(ctx, db)
}

func runMigrations(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	timeout := fs.Duration("timeout", defaultCommandTimeout, "maximum time to wait for migrations")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withDatabase(cmdCtx, *timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("running database migrations")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}
		cmdCtx.Logger.Info("migrations completed successfully")
		return nil
	})
}

func runDBSeed(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("db-seed", flag.ContinueOnError)
	timeout := fs.Duration("timeout", defaultCommandTimeout, "maximum time to wait for seeding")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withDatabase(cmdCtx, *timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("ensuring database migrations are current")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}

		cmdCtx.Logger.Info("seeding development data")
		if seedErr := devseed.Run(ctx, devseed.NewServices(db), cmdCtx.Logger); seedErr != nil {
			return fmt.Errorf("seed data: %w", seedErr)
		}

		cmdCtx.Logger.Info("database seeding completed successfully")
		return nil
	})
}

func runCreateProfile(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("create-profile", flag.ContinueOnError)
	id := fs.String("id", "", "identity provider subject (required)")
	fullName := fs.String("full-name", "", "display name (required)")
	roleArg := fs.String("role", "", "role: ADMIN, DOCTOR, NURSE, RECEPTIONIST or PATIENT (required)")
	timeout := fs.Duration("timeout", defaultCommandTimeout, "maximum time to wait")
	if err := fs.Parse(args); err != nil {
		return err
	}

	role, err := parseRoleArg(*roleArg)
	if err != nil {
		return err
	}
	if strings.TrimSpace(*id) == "" || strings.TrimSpace(*fullName) == "" {
		return errors.New("-id and -full-name are required")
	}

	return withDatabase(cmdCtx, *timeout, func(ctx context.Context, db *sql.DB) error {
		profile, createErr := data.NewProfileRepo(db).Create(ctx, &model.CreateProfileRequest{
			ID:       *id,
			FullName: *fullName,
			Role:     role,
		})
		if createErr != nil {
			if errors.Is(createErr, data.ErrProfileExists) {
				return fmt.Errorf("profile %s already exists", *id)
			}
			return createErr
		}
		cmdCtx.Logger.Info("profile created", "id", profile.ID, "role", profile.Role)
		return nil
	})
}

func runSetRole(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("set-role", flag.ContinueOnError)
	id := fs.String("id", "", "profile id (required)")
	roleArg := fs.String("role", "", "new role (required)")
	timeout := fs.Duration("timeout", defaultCommandTimeout, "maximum time to wait")
	if err := fs.Parse(args); err != nil {
		return err
	}

	role, err := parseRoleArg(*roleArg)
	if err != nil {
		return err
	}
	if strings.TrimSpace(*id) == "" {
		return errors.New("-id is required")
	}

	return withDatabase(cmdCtx, *timeout, func(ctx context.Context, db *sql.DB) error {
		profile, setErr := data.NewProfileRepo(db).SetRole(ctx, *id, role.StorageString())
		if setErr != nil {
			if errors.Is(setErr, data.ErrProfileNotFound) {
				return fmt.Errorf("profile %s not found", *id)
			}
			return setErr
		}
		cmdCtx.Logger.Info("role updated", "id", profile.ID, "role", profile.Role)
		return nil
	})
}

func runListProfiles(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("list-profiles", flag.ContinueOnError)
	roleArg := fs.String("role", "", "filter by role (optional)")
	limit := fs.Int("limit", 100, "maximum rows to return")
	offset := fs.Int("offset", 0, "rows to skip")
	timeout := fs.Duration("timeout", defaultCommandTimeout, "maximum time to wait")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := model.ProfilesListOptions{Limit: *limit, Offset: *offset}
	if strings.TrimSpace(*roleArg) != "" {
		role, err := parseRoleArg(*roleArg)
		if err != nil {
			return err
		}
		opts.Role = &role
	}

	return withDatabase(cmdCtx, *timeout, func(ctx context.Context, db *sql.DB) error {
		profiles, listErr := data.NewProfileRepo(db).List(ctx, opts)
		if listErr != nil {
			return listErr
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if err := writef(tw, "ID\tROLE\tFULL NAME\tCREATED\n"); err != nil {
			return err
		}
		for _, p := range profiles {
			if err := writef(tw, "%s\t%s\t%s\t%s\n",
				p.ID, p.Role, p.FullName, p.CreatedAt.Format(time.RFC3339)); err != nil {
				return err
			}
		}
		return tw.Flush()
	})
}

func parseRoleArg(raw string) (auth.Role, error) {
	role := auth.ParseRole(strings.TrimSpace(raw))
	if role == auth.RoleUnknown {
		return auth.RoleUnknown, fmt.Errorf("unknown role %q", raw)
	}
	return role, nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
