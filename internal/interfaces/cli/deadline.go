package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/GenApp-Engine/internal/domain/calendar"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/database/redis"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/holidays"
)

// newDeadlineCommand computes deadlines from the terminal, useful for
// checking what the engine would stamp on a case.
func newDeadlineCommand(opts *RootOptions) *cobra.Command {
	var (
		from     string
		days     int
		judicial bool
		offline  bool
	)

	cmd := &cobra.Command{
		Use:   "deadline",
		Short: "Compute a response or judicial-order deadline",
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, err := time.Parse("2006-01-02", from)
			if err != nil {
				return fmt.Errorf("--from must be yyyy-mm-dd: %w", err)
			}

			logger, err := newLogger(opts)
			if err != nil {
				return err
			}

			var source calendar.HolidaySource
			if !offline {
				cfg, err := loadConfig(opts)
				if err != nil {
					return err
				}
				source = holidays.NewGovUKSource(cfg.Holiday, nil, nil, logger)
			}
			cal := calendar.NewWorkingDayCalendar(cmd.Context(), source, logger)
			calc := calendar.NewDeadlineCalculator(cal, calendar.DefaultEndOfBusinessHour)

			var deadline time.Time
			if judicial {
				deadline = calc.JudicialOrderDeadlineDate(base, days)
			} else {
				deadline = calc.ApplicantResponseDeadline(base, days)
			}

			if opts.JSONOutput {
				return printJSON(map[string]any{
					"from": base.Format("2006-01-02"), "days": days, "deadline": deadline,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), deadline.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", time.Now().Format("2006-01-02"), "base date (yyyy-mm-dd)")
	cmd.Flags().IntVar(&days, "days", 5, "days to add")
	cmd.Flags().BoolVar(&judicial, "judicial-order", false, "calendar-day count with weekend-only shift")
	cmd.Flags().BoolVar(&offline, "offline", false, "skip the holiday feed (weekend-only calendar)")
	return cmd
}

// newHolidaysCommand prints the bank holidays the engine would load.
func newHolidaysCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the bank holidays from the configured feed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(opts)
			if err != nil {
				return err
			}

			var cache *redis.Client
			if cfg.Redis.Addr != "" {
				if c, err := redis.NewClient(cmd.Context(), cfg.Redis, logger); err == nil {
					cache = c
					defer c.Close()
				}
			}

			source := holidays.NewGovUKSource(cfg.Holiday, cache, nil, logger)
			dates, err := source.RetrieveAll(cmd.Context())
			if err != nil {
				return err
			}

			if opts.JSONOutput {
				return printJSON(dates)
			}
			for _, d := range dates {
				fmt.Fprintln(cmd.OutOrStdout(), d.Format("2006-01-02"))
			}
			return nil
		},
	}
	return cmd
}
