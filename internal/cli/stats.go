package cli

import (
	"bufio"
	"fmt"

	"din8580-quiz-service/internal/config"
	"github.com/spf13/cobra"
)

// NewStatsCmd prints the aggregated teacher report for the configured
// result store.
func NewStatsCmd(configPath *string) *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print aggregated quiz statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			service, cleanup, err := buildService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := service.Report(cmd.Context())
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)

			if !reset {
				return nil
			}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if !promptYes(scanner, cmd.OutOrStdout(), "\nMöchten Sie wirklich alle anonymen Statistiken löschen? (j/n) ") {
				fmt.Fprintln(cmd.OutOrStdout(), "Abgebrochen.")
				return nil
			}
			if err := service.ClearHistory(cmd.Context(), true); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Statistiken gelöscht.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "clear all recorded statistics after printing (asks for confirmation)")
	return cmd
}
