package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"din8580-quiz-service/internal/app"
	"din8580-quiz-service/internal/config"
	"din8580-quiz-service/internal/domain"
	"github.com/spf13/cobra"
)

// NewPlayCmd runs one quiz pass interactively in the terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Take the quiz in the terminal",
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

			session, err := service.NewSession(cmd.Context())
			if err != nil {
				return err
			}
			return runPlay(cmd.Context(), session, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runPlay(ctx context.Context, session *app.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "DIN 8580 Systematik")
	fmt.Fprintln(out, "Interaktive Wissensaktivierung Fertigungstechnik")

	qv, err := session.StartQuiz()
	if err != nil {
		return err
	}

	for {
		fmt.Fprintf(out, "\nFRAGE %d / %d  (%d%% Fortschritt)\n", qv.Index+1, qv.Total, int(qv.Progress*100))
		fmt.Fprintln(out, qv.Text)

		answer, ok := promptAnswer(scanner, out, qv)
		if !ok {
			// Abandoned run, nothing is persisted.
			return nil
		}
		if err := session.SelectAnswer(answer); err != nil {
			return err
		}
		fb, answered, err := session.SubmitAnswer()
		if err != nil {
			return err
		}
		if answered {
			if fb.Correct {
				fmt.Fprintln(out, "Ergebnis: Korrekt")
			} else {
				fmt.Fprintln(out, "Ergebnis: Falsch")
			}
			fmt.Fprintln(out, fb.Explanation)
		}

		next, summary, err := session.Advance(ctx)
		if err != nil {
			return err
		}
		if summary != nil {
			fmt.Fprintln(out, "\nAusgezeichnet! Sie haben das Quiz zur DIN 8580 abgeschlossen.")
			fmt.Fprintf(out, "Punkte erreicht: %s\n", summary.Score)
			break
		}
		qv = *next
	}

	if !promptYes(scanner, out, "\nKurs-Statistik anzeigen? (j/n) ") {
		return nil
	}
	report, err := session.OpenStats(ctx)
	if err != nil {
		return err
	}
	printReport(out, report)

	if promptYes(scanner, out, "\nStatistiken zurücksetzen? (j/n) ") {
		confirmed := promptYes(scanner, out, "Möchten Sie wirklich alle anonymen Statistiken löschen? (j/n) ")
		if confirmed {
			if err := session.ClearHistory(ctx, true); err != nil {
				return err
			}
			fmt.Fprintln(out, "Statistiken gelöscht.")
		}
	}
	return nil
}

// promptAnswer reads a selection for the question: an option letter for
// multiple choice, w/f for true/false. Unrecognized input re-prompts.
func promptAnswer(scanner *bufio.Scanner, out io.Writer, qv app.QuestionView) (string, bool) {
	for {
		if qv.Type == domain.TrueFalse {
			fmt.Fprint(out, "(w)ahr / (f)alsch: ")
		} else {
			for i, opt := range qv.Options {
				fmt.Fprintf(out, "  %c) %s\n", 'A'+i, opt)
			}
			fmt.Fprint(out, "Antwort: ")
		}
		if !scanner.Scan() {
			return "", false
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if qv.Type == domain.TrueFalse {
			switch strings.ToLower(input) {
			case "w", "wahr":
				return "true", true
			case "f", "falsch":
				return "false", true
			}
			continue
		}

		letter := strings.ToUpper(input)
		if len(letter) == 1 {
			idx := int(letter[0] - 'A')
			if idx >= 0 && idx < len(qv.Options) {
				return qv.Options[idx], true
			}
		}
	}
}

func promptYes(scanner *bufio.Scanner, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "j" || answer == "ja"
}

func printReport(out io.Writer, report app.Report) {
	fmt.Fprintln(out, "\nErgebnisanalyse")
	fmt.Fprintf(out, "Anonymisierte Auswertung von ca. %d Teilnahmen\n\n", report.EstimatedParticipants)
	if report.TotalResults == 0 {
		fmt.Fprintln(out, "Bisher wurden keine Quiz-Ergebnisse aufgezeichnet.")
		return
	}
	fmt.Fprintf(out, "%-6s %-9s %-8s %-7s %s\n", "Frage", "Antworten", "Richtig", "Falsch", "Quote")
	for _, s := range report.Stats {
		fmt.Fprintf(out, "Q%-5d %-9d %-8d %-7d %d%%\n", s.QuestionID, s.Total, s.Correct, s.Wrong, s.Percentage)
	}
}
