package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alonso287/onthisday/internal/game"
	"github.com/Alonso287/onthisday/internal/prefs"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play today's quiz",
		RunE:  runPlay,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	eng := a.newEngine()
	now := eng.Today()

	switch r := eng.Load(cmd.Context()).(type) {
	case game.Failed:
		return r.Err
	case game.Ended:
		fmt.Println("You already finished today's game.")
		printFinal(os.Stdout, r.State, a.prefs, now)
		return nil
	}

	if a.showIntro {
		printIntro(os.Stdout, a.prefs, now)
	}

	// A resumed session may hold an answered question waiting to advance.
	if st := eng.State(); st.CurrentQuestion.GoToNext {
		if r, ok := eng.Advance().(game.Ended); ok {
			printFinal(os.Stdout, r.State, a.prefs, now)
			return nil
		}
	}

	return playLoop(eng, a.prefs, os.Stdin, os.Stdout, now)
}

// playLoop runs the question/answer prompt until today's game is complete
// or input runs out. Quitting mid-game is fine; progress is persisted after
// every submit and advance.
func playLoop(eng *game.Engine, p *prefs.Prefs, in io.Reader, out io.Writer, now time.Time) error {
	scanner := bufio.NewScanner(in)

	for {
		st := eng.State()
		if st.Completed() {
			break
		}

		q := st.CurrentQuestion
		years := []int{q.Event1.Year, q.Event2.Year}
		sort.Ints(years)

		fmt.Fprintf(out, "\nQuestion %d of %d\n", st.CurrentQuestionIndex+1, st.TotalQuestions)
		fmt.Fprintf(out, "  %s\n", q.Event1.Text)
		fmt.Fprintf(out, "Which year? [%d or %d]: ", years[0], years[1])

		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out, "Come back to finish today's game; your progress is saved.")
			return nil
		}

		year, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || (year != years[0] && year != years[1]) {
			fmt.Fprintf(out, "Please answer %d or %d.\n", years[0], years[1])
			continue
		}

		switch r := eng.SubmitAnswer(year).(type) {
		case game.QuestionCorrect:
			fmt.Fprintln(out, "Correct!")
		case game.QuestionIncorrect:
			fmt.Fprintf(out, "Not quite: that was %d.\n", q.Event1.Year)
		case game.Failed:
			return r.Err
		}

		if r, ok := eng.Advance().(game.Failed); ok {
			return r.Err
		}
	}

	printFinal(out, eng.State(), p, now)
	return nil
}

// printIntro greets the player on their first visit of the day.
func printIntro(w io.Writer, p *prefs.Prefs, now time.Time) {
	fmt.Fprintf(w, "Welcome to On This Day #%d!\n", p.GameNumberFor(now))
	fmt.Fprintln(w, "Guess which year each of today's events happened in.")
	if left := p.DaysLeft(now); left > 0 {
		fmt.Fprintf(w, "%d days left in this round.\n", left)
	}
}

// printFinal shows the day's score, the share squares and the articles
// collected along the way.
func printFinal(w io.Writer, st game.State, p *prefs.Prefs, now time.Time) {
	fmt.Fprintf(w, "\nOn This Day #%d: %d/%d\n", p.GameNumberFor(now), st.Score(), st.TotalQuestions)
	fmt.Fprintln(w, squares(st.AnswerState, st.TotalQuestions))
	if len(st.Articles) > 0 {
		fmt.Fprintln(w, "\nRead more:")
		for _, pg := range st.Articles {
			if pg.URL != "" {
				fmt.Fprintf(w, "  %s (%s)\n", pg.DisplayName(), pg.URL)
			} else {
				fmt.Fprintf(w, "  %s\n", pg.DisplayName())
			}
		}
	}
}
