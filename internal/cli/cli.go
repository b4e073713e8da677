package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/youjiac/baseball/internal/assistant"
	"github.com/youjiac/baseball/internal/cache"
	"github.com/youjiac/baseball/internal/calc"
	"github.com/youjiac/baseball/internal/config"
	"github.com/youjiac/baseball/internal/logger"
	"github.com/youjiac/baseball/internal/scraper"
	"github.com/youjiac/baseball/internal/stats"
	"github.com/youjiac/baseball/internal/storage"
	"github.com/youjiac/baseball/internal/team"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cpbl-dashboard",
		Short: "CPBL team and player data from the command line",
		Long: `A CLI for CPBL team rosters, standings, and player statistics.
Team data is scraped once per hour and served from a local snapshot;
player statistics are fetched per query with their own cache.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newTeamsCmd())
	cmd.AddCommand(newRefreshCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newAskCmd())
	cmd.AddCommand(newPredictCmd())

	return cmd
}

// newController wires the snapshot pipeline from configuration.
func newController(cfg *config.Config) (*cache.Controller, error) {
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	fetcher, err := scraper.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing scraper: %w", err)
	}
	return cache.New(store, fetcher, cache.WithTTL(cfg.SnapshotTTL)), nil
}

// resolveTeamArg accepts a team code or any known team name fragment.
func resolveTeamArg(arg string) (team.Code, error) {
	code := team.Code(strings.ToUpper(strings.TrimSpace(arg)))
	if team.IsValid(code) {
		return code, nil
	}
	if code, ok := team.ResolveName(arg); ok {
		return code, nil
	}
	return "", fmt.Errorf("unknown team: %s", arg)
}

func newTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams [team]",
		Short: "Show cached team data, refreshing when stale",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}

			cfg := config.Load()
			controller, err := newController(cfg)
			if err != nil {
				return err
			}

			result, err := controller.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading team data: %w", err)
			}
			if result.Status == cache.StatusStale {
				fmt.Fprintln(os.Stderr, "Warning: refresh failed, serving stale data.")
			}

			records := make([]*team.TeamRecord, 0, len(team.AllCodes))
			if len(args) == 1 {
				code, err := resolveTeamArg(args[0])
				if err != nil {
					return err
				}
				record, ok := result.Snapshot.Teams[code]
				if !ok {
					return fmt.Errorf("no data for team %s this cycle", code)
				}
				records = append(records, record)
			} else {
				for _, code := range team.AllCodes {
					if record, ok := result.Snapshot.Teams[code]; ok {
						records = append(records, record)
					}
				}
			}

			if format == FormatJSON {
				return writeJSON(os.Stdout, records)
			}
			// Single-team text output always shows the roster.
			writeTeamsText(os.Stdout, records, flagVerbose || len(args) == 1)
			return nil
		},
	}
}

func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refetch all teams, bypassing the freshness check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}

			cfg := config.Load()
			controller, err := newController(cfg)
			if err != nil {
				return err
			}

			result, err := controller.Refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("refreshing: %w", err)
			}

			if format == FormatJSON {
				return writeJSON(os.Stdout, map[string]any{
					"status": string(result.Status),
					"teams":  len(result.Snapshot.Teams),
					"failed": result.Failed,
				})
			}
			fmt.Printf("Snapshot refreshed: %d teams.\n", len(result.Snapshot.Teams))
			for _, code := range result.Failed {
				fmt.Printf("  failed: %s\n", code)
			}
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	var (
		flagYear     string
		flagPosition string
		flagRecord   string
		flagActive   bool
		flagSort     string
		flagMinPA    float64
		flagMinIP    float64
		flagTeams    []string
		flagLimit    int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Query player statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}

			query := stats.DefaultQuery(flagYear)
			switch strings.ToLower(flagPosition) {
			case "batters", stats.PositionBatters:
				query.Position = stats.PositionBatters
			case "pitchers", stats.PositionPitchers:
				query.Position = stats.PositionPitchers
			default:
				return fmt.Errorf("invalid position: %s (must be 'batters' or 'pitchers')", flagPosition)
			}
			query.RecordType = flagRecord
			if flagActive {
				query.Active = stats.ActiveCurrent
			}

			cfg := config.Load()
			client := stats.NewClient(cfg)
			result := client.Fetch(cmd.Context(), query)
			if !result.Success {
				return fmt.Errorf("stats query failed (%s): %s", result.ErrorKind, result.Error)
			}

			filter := stats.Filter{MinPA: flagMinPA, MinIP: flagMinIP, Teams: flagTeams}
			rows := filter.Apply(result.Data)
			if flagSort != "" {
				stats.SortBy(rows, flagSort)
			}
			if flagLimit > 0 && len(rows) > flagLimit {
				rows = rows[:flagLimit]
			}

			if format == FormatJSON {
				return writeJSON(os.Stdout, rows)
			}
			writeStatsText(os.Stdout, rows, query.Position)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagYear, "year", "2024", "Season year")
	cmd.Flags().StringVar(&flagPosition, "position", "batters", "Position category: batters or pitchers")
	cmd.Flags().StringVar(&flagRecord, "record", stats.RecordRegular, "Record type: A regular, C championship, E challenge, G preseason")
	cmd.Flags().BoolVar(&flagActive, "active", false, "Only currently registered players")
	cmd.Flags().StringVar(&flagSort, "sort", "", "Sort field (era and whip sort ascending)")
	cmd.Flags().Float64Var(&flagMinPA, "min-pa", 0, "Minimum plate appearances")
	cmd.Flags().Float64Var(&flagMinIP, "min-ip", 0, "Minimum innings pitched")
	cmd.Flags().StringSliceVar(&flagTeams, "team", nil, "Team codes to include (repeatable)")
	cmd.Flags().IntVar(&flagLimit, "limit", 0, "Maximum rows to show")

	return cmd
}

func newAskCmd() *cobra.Command {
	var flagLLM bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a free-text question about teams and players",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			controller, err := newController(cfg)
			if err != nil {
				return err
			}

			kb := assistant.SnapshotFunc(func(ctx context.Context) (*team.Snapshot, error) {
				result, err := controller.Load(ctx)
				if err != nil {
					return nil, err
				}
				return result.Snapshot, nil
			})

			question := strings.Join(args, " ")
			var answer string
			if flagLLM {
				answer = assistant.NewChat(cfg, kb).Answer(cmd.Context(), question)
			} else {
				answer = assistant.NewLookup(kb).Answer(cmd.Context(), question)
			}
			fmt.Println(answer)
			return nil
		},
	}

	cmd.Flags().BoolVar(&flagLLM, "llm", false, "Answer via the chat backend instead of rule-based lookup")

	return cmd
}

func newPredictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predict <team>",
		Short: "Project the next-game win probability from recent form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}
			code, err := resolveTeamArg(args[0])
			if err != nil {
				return err
			}

			cfg := config.Load()
			controller, err := newController(cfg)
			if err != nil {
				return err
			}
			result, err := controller.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading team data: %w", err)
			}
			record, ok := result.Snapshot.Teams[code]
			if !ok {
				return fmt.Errorf("no data for team %s this cycle", code)
			}

			// RecentTrend is newest first; the predictor wants oldest first.
			outcomes := make([]bool, 0, len(record.RecentTrend))
			for i := len(record.RecentTrend) - 1; i >= 0; i-- {
				if won, ok := record.RecentTrend[i].WonBy(code); ok {
					outcomes = append(outcomes, won)
				}
			}
			probability := calc.PredictPerformance(outcomes)

			if format == FormatJSON {
				return writeJSON(os.Stdout, map[string]any{
					"team":            code,
					"games":           len(outcomes),
					"win_probability": probability,
				})
			}
			fmt.Printf("%s 下一場預測勝率: %.1f%% (依最近 %d 場)\n",
				record.Name, probability*100, len(outcomes))
			return nil
		},
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
