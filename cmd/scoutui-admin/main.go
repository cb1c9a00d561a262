// scoutui-admin is a maintenance CLI for operators: migrations, development
// seeding, session inspection, and one-shot draft cleanup.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/pitchscout/scout-ui-api/config"
	"github.com/pitchscout/scout-ui-api/internal/adapters/postgres"
	"github.com/pitchscout/scout-ui-api/internal/bootstrap"
	"github.com/pitchscout/scout-ui-api/internal/devseed"
	"github.com/pitchscout/scout-ui-api/internal/service"
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

const defaultMigrationTimeout = 5 * time.Minute

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmdName)
		printUsage(os.Stderr)
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
			run:         runMigrate,
		},
		"db-seed": {
			name:        "db-seed",
			description: "Run database migrations and seed development data",
			run:         runDBSeed,
		},
		"reap-drafts": {
			name:        "reap-drafts",
			description: "Delete stale draft reports in a single pass",
			run:         runReapDrafts,
		},
		"list-sessions": {
			name:        "list-sessions",
			description: "List active session keys in the Redis session store",
			run:         runListSessions,
		},
		"clear-sessions": {
			name:        "clear-sessions",
			description: "Delete all sessions from the Redis session store (forces re-login)",
			run:         runClearSessions,
		},
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: scoutui-admin <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")

	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", name, cmds[name].description)
	}
	tw.Flush()
}

func runMigrate(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	timeout := fs.Duration("timeout", defaultMigrationTimeout, "migration timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pool, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	migrateCtx, cancel := context.WithTimeout(ctx.Ctx, *timeout)
	defer cancel()

	return bootstrap.RunMigrations(migrateCtx, pool, ctx.Logger)
}

func runDBSeed(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("db-seed", flag.ContinueOnError)
	skipMigrations := fs.Bool("skip-migrations", false, "seed without running migrations first")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pool, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if !*skipMigrations {
		if err = bootstrap.RunMigrations(ctx.Ctx, pool, ctx.Logger); err != nil {
			return err
		}
	}

	return devseed.Run(ctx.Ctx, devseed.NewServices(pool), ctx.Logger)
}

func runReapDrafts(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("reap-drafts", flag.ContinueOnError)
	maxAgeDays := fs.Int("max-age-days", ctx.Config.Reaper.DraftMaxAgeDays, "delete drafts untouched for this many days")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pool, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	reaper, err := service.NewReaperService(service.ReaperServiceOptions{
		Reports:         postgres.NewReportRepo(pool),
		Logger:          ctx.Logger,
		DraftMaxAgeDays: *maxAgeDays,
	})
	if err != nil {
		return err
	}

	count, err := reaper.RunOnce(ctx.Ctx)
	if err != nil {
		return fmt.Errorf("reap drafts: %w", err)
	}

	fmt.Printf("deleted %d stale draft report(s)\n", count)
	return nil
}

func runListSessions(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("list-sessions", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := connectRedis(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	keys, err := scanSessionKeys(ctx.Ctx, client)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		fmt.Println("no active sessions")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SESSION KEY\tTTL")
	for _, key := range keys {
		ttl, ttlErr := client.TTL(ctx.Ctx, key).Result()
		if ttlErr != nil {
			return fmt.Errorf("fetch TTL for %s: %w", key, ttlErr)
		}
		fmt.Fprintf(tw, "%s\t%s\n", key, ttl.Round(time.Second))
	}
	return tw.Flush()
}

func runClearSessions(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("clear-sessions", flag.ContinueOnError)
	yes := fs.Bool("yes", false, "skip confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !*yes {
		fmt.Print("this signs out every active user; re-run with -yes to confirm\n")
		return nil
	}

	client, err := connectRedis(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	keys, err := scanSessionKeys(ctx.Ctx, client)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Println("no active sessions")
		return nil
	}

	if err := client.Del(ctx.Ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	fmt.Printf("deleted %d session(s)\n", len(keys))
	return nil
}
