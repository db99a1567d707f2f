package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"styleapp-backend/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const migrateTimeout = 2 * time.Minute

func main() {
	dirURL := flag.String("dir", "file://migrations", "migration directory URL")
	statusOnly := flag.Bool("status", false, "print the migration status without applying")
	dryRun := flag.Bool("dry-run", false, "print pending statements without executing them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("Failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	url := cfg.DB.BuildDSN()

	if *statusOnly {
		status, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    url,
			DirURL: *dirURL,
		})
		if err != nil {
			slog.Error("Failed to read migration status", "error", err)
			os.Exit(1)
		}
		slog.Info("Migration status",
			"status", status.Status,
			"current", status.Current,
			"next", status.Next,
			"pending", len(status.Pending),
		)
		return
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    url,
		DirURL: *dirURL,
		DryRun: *dryRun,
	})
	if err != nil {
		slog.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	for _, f := range res.Applied {
		slog.Info("Applied migration", "version", f.Version, "name", f.Name)
	}
	slog.Info("Migrations complete",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
		"dry_run", *dryRun,
	)
}
