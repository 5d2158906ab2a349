package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/GenApp-Engine/internal/application/notification"
	"github.com/turtacn/GenApp-Engine/internal/domain/calendar"
	"github.com/turtacn/GenApp-Engine/internal/domain/gacase"
)

// newPlanCommand dry-runs the notification planner against a snapshot file.
// Nothing is sent or persisted; the command prints the intents and the next
// lifecycle state.
func newPlanCommand(opts *RootOptions) *cobra.Command {
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Dry-run notification planning against a snapshot file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := os.ReadFile(snapshotPath)
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			var snapshot gacase.CaseSnapshot
			if err := json.Unmarshal(raw, &snapshot); err != nil {
				return fmt.Errorf("decode snapshot: %w", err)
			}

			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(opts)
			if err != nil {
				return err
			}

			// Offline planning uses the weekend-only calendar; stamped
			// deadlines may differ from the live service around holidays.
			cal := calendar.NewWorkingDayCalendar(cmd.Context(), nil, logger)
			calc := calendar.NewDeadlineCalculator(cal, cfg.Deadline.EndOfBusinessHour)
			planner := notification.NewPlanner(cfg.Templates, calc, cfg.Deadline.ResponseWindowDays, nil)

			intents, updated, err := planner.PlanAll(&snapshot)
			if err != nil {
				return err
			}

			out := planOutput{
				NextState: gacase.NextState(updated.Decision, updated.State),
				Intents:   intents,
			}
			if rmi := updated.Decision.RequestMoreInfo; rmi != nil {
				out.DeadlineForSubmission = rmi.DeadlineForSubmission
			}
			if opts.JSONOutput {
				return printJSON(out)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "next state: %s\n", out.NextState)
			for _, intent := range out.Intents {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-40s %s\n", intent.Role, intent.Recipient, intent.TemplateID)
			}
			if out.DeadlineForSubmission != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "deadline for submission: %s\n", out.DeadlineForSubmission.Format(time.RFC3339))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&snapshotPath, "snapshot", "s", "", "path to a case snapshot JSON file")
	_ = cmd.MarkFlagRequired("snapshot")
	return cmd
}

type planOutput struct {
	NextState             gacase.State                      `json:"nextState"`
	Intents               []notification.NotificationIntent `json:"intents"`
	DeadlineForSubmission *time.Time                        `json:"deadlineForSubmission,omitempty"`
}
