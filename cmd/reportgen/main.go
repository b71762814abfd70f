// Command reportgen generates a hackathon report with the configured AI
// backend and stores it in the report catalog as a featured hackathon.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"whattohack-api/internal/ai"
	"whattohack-api/internal/config"
	"whattohack-api/internal/logger"
	"whattohack-api/internal/models"
	"whattohack-api/internal/planner"
	"whattohack-api/internal/reports"

	"github.com/spf13/cobra"
)

var (
	cfg *config.Config

	genName     string
	genURL      string
	genSponsors []string
	genInstant  bool
	genPrint    bool
)

var rootCmd = &cobra.Command{
	Use:   "reportgen",
	Short: "Manage pre-generated hackathon reports",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		logger.Setup(cfg.Env, cfg.LogLevel)
		return nil
	},
	SilenceUsage: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate ideas and leverages for a hackathon and store them",
	Example: `  reportgen generate --name "HackMIT 2025" --sponsor OpenAI --sponsor Figma --instant
  reportgen generate --url https://hackmit.org`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if genName == "" && genURL == "" {
			return fmt.Errorf("either --name or --url is required")
		}

		ctx := cmd.Context()
		store, err := reports.Open(ctx, cfg)
		if err != nil {
			return err
		}
		gen, closeAI, err := ai.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeAI()

		report, err := buildReport(ctx, planner.New(store, gen), options{
			Name:     genName,
			URL:      genURL,
			Sponsors: genSponsors,
			Instant:  genInstant,
		})
		if err != nil {
			return err
		}
		if err := store.Upsert(ctx, report); err != nil {
			return fmt.Errorf("failed to store report: %w", err)
		}
		slog.Info("Report stored", "hackathon", report.HackathonName,
			"ideas", len(report.Ideas), "leverages", len(report.Leverages), "instant", report.Instant)

		if genPrint {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List featured hackathons in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := reports.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		names, err := store.Names(cmd.Context())
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genName, "name", "", "hackathon name; overrides the extracted name")
	generateCmd.Flags().StringVar(&genURL, "url", "", "hackathon page to extract details and sponsors from")
	generateCmd.Flags().StringSliceVar(&genSponsors, "sponsor", nil, "sponsor name (repeatable)")
	generateCmd.Flags().BoolVar(&genInstant, "instant", false, "serve this hackathon without AI calls on search")
	generateCmd.Flags().BoolVar(&genPrint, "print", false, "print the stored report as JSON")

	rootCmd.AddCommand(generateCmd, listCmd)
}

type options struct {
	Name     string
	URL      string
	Sponsors []string
	Instant  bool
}

// buildReport extracts the hackathon when a URL is given, then generates a
// fresh report for it.
func buildReport(ctx context.Context, svc *planner.Service, opts options) (models.Report, error) {
	rec := models.HackathonRecord{Name: opts.Name, Sponsors: opts.Sponsors, Jury: []string{}}
	if opts.URL != "" {
		loaded, err := svc.Load(ctx, opts.URL, func(stage string, current, total int) {
			slog.Info("Loading hackathon", "stage", stage, "current", current, "total", total)
		})
		if err != nil {
			return models.Report{}, fmt.Errorf("failed to load %s: %w", opts.URL, err)
		}
		rec = loaded.Record
		if opts.Name != "" {
			rec.Name = opts.Name
		}
		if len(opts.Sponsors) > 0 {
			rec.Sponsors = opts.Sponsors
		}
	}
	if rec.Sponsors == nil {
		rec.Sponsors = []string{}
	}

	out, err := svc.Generate(ctx, planner.GenerateRequest{Record: rec, BypassCache: true})
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to generate report for %s: %w", rec.Name, err)
	}

	return models.Report{
		HackathonName: rec.Name,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Instant:       opts.Instant,
		Hackathon:     &rec,
		Ideas:         out.Ideas,
		Leverages:     out.Leverages,
	}, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("reportgen failed", "error", err)
		stop()
		os.Exit(1)
	}
}
