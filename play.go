// play.go
//
// Terminal client: plays one round on stdin/stdout.
// Commands at the prompt:
//   <language>   submit a guess (must be in the catalog)
//   giveup       end the round
//   list         print the catalog
//   quit         leave without finishing

package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/langr/internal/catalog"
	"github.com/robalobadob/langr/internal/daily"
	"github.com/robalobadob/langr/internal/game"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	goodStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func newPlayCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a round in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})

			idx, cat, sel, err := a.loadGame(cmd.Context())
			if err != nil {
				log.Fatal().Err(err).Msg("failed to load game data")
			}
			today := daily.Today(a.cfg.Location)
			if date == "" {
				date = today
			}
			if date != today && !slices.Contains(idx.DatesAtOrBefore(today), date) {
				return fmt.Errorf("date %s is not available", date)
			}
			puzzle, _, ok := sel.Resolve(date)
			if !ok {
				return fmt.Errorf("no puzzle for %s", date)
			}
			return playRound(game.Start(puzzle, date), cat, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "explore a past dataset date (YYYY-MM-DD)")
	return cmd
}

// playRound drives r from lines on in until it ends or input runs out.
func playRound(r *game.Round, cat *catalog.Catalog, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, headerStyle.Render("Langr "+r.Date))
	shown := 0
	shown = printNewClues(out, r, shown)

	sc := bufio.NewScanner(in)
	for !r.Terminal() {
		fmt.Fprintf(out, "Guess %d/%d> ", r.GuessCount, game.MaxGuesses)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "list":
			fmt.Fprintln(out, dimStyle.Render(strings.Join(cat.Names(), ", ")))
			continue
		case "giveup", "give up":
			r.GiveUp()
			continue
		}
		if !cat.Contains(line) {
			fmt.Fprintln(out, badStyle.Render(fmt.Sprintf("%q is not a language choice (type 'list').", line)))
			continue
		}
		switch r.SubmitGuess(line) {
		case game.OutcomeDuplicate:
			fmt.Fprintln(out, badStyle.Render(fmt.Sprintf("You already guessed %s.", line)))
		case game.OutcomeIncorrectContinue, game.OutcomeIncorrectExhausted:
			fmt.Fprintln(out, badStyle.Render(fmt.Sprintf("Incorrect! %q is not the right answer.", line)))
			shown = printNewClues(out, r, shown)
		}
	}

	if r.Status == game.StatusSolved {
		fmt.Fprintln(out, goodStyle.Render(fmt.Sprintf("🎉 The language was %s! Solved in %d guess%s.", r.Answer(), r.GuessCount, plural(r.GuessCount))))
	} else {
		fmt.Fprintln(out, badStyle.Render("The language was "+r.Answer()+"."))
	}
	fmt.Fprintln(out, dimStyle.Render(r.Summary()))
	return nil
}

// printNewClues prints clues revealed since the previous call.
func printNewClues(out io.Writer, r *game.Round, shown int) int {
	clues := r.Clues()
	for _, c := range clues[shown:] {
		fmt.Fprintln(out, headerStyle.Render(c.Header))
		if c.Audio != nil {
			fmt.Fprintln(out, "  "+c.Audio.Src)
		}
		fmt.Fprintln(out, "  "+c.Content)
	}
	return len(clues)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "es"
}
