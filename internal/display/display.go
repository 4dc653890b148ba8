// Package display renders cards, hands and results for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/showdown/internal/equity"
	"github.com/lox/showdown/internal/holdem"
	"github.com/lox/showdown/poker"
)

// Styles contains all styling for rendered output.
type Styles struct {
	Header    lipgloss.Style
	Hand      lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Category  lipgloss.Style
	Win       lipgloss.Style
	Tie       lipgloss.Style
	Percent   lipgloss.Style
	Info      lipgloss.Style
}

// Printer writes styled output to w.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a Printer. With color disabled every style renders as
// plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w: w,
		styles: Styles{
			Header:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
			Hand:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			RedCard:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
			BlackCard: r.NewStyle().Bold(true),
			Category:  r.NewStyle().Foreground(lipgloss.Color("12")),
			Win:       r.NewStyle().Foreground(lipgloss.Color("10")),
			Tie:       r.NewStyle().Foreground(lipgloss.Color("11")),
			Percent:   r.NewStyle().Foreground(lipgloss.Color("9")),
			Info:      r.NewStyle().Foreground(lipgloss.Color("#626262")),
		},
	}
}

// Card renders a single card in its suit colour.
func (p *Printer) Card(c poker.Card) string {
	if c.Suit().IsRed() {
		return p.styles.RedCard.Render(c.String())
	}
	return p.styles.BlackCard.Render(c.String())
}

// Cards renders cards separated by spaces.
func (p *Printer) Cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = p.Card(c)
	}
	return strings.Join(parts, " ")
}

// Evaluation prints a single best-hand evaluation.
func (p *Printer) Evaluation(hole, board []poker.Card, res poker.Result, best [5]poker.Card) {
	if len(hole) == 2 {
		fmt.Fprintf(p.w, "%s  %s (%s)\n", p.styles.Header.Render("hole"), p.Cards(hole),
			poker.ClassifyHole(hole[0], hole[1]))
	}
	if len(board) > 0 {
		fmt.Fprintf(p.w, "%s %s\n", p.styles.Header.Render("board"), p.Cards(board))
	}
	fmt.Fprintf(p.w, "%s  %s\n", p.styles.Header.Render("best"), p.Cards(best[:]))
	fmt.Fprintf(p.w, "%s  %s [%s]\n", p.styles.Header.Render("hand"), p.styles.Category.Render(res.String()), res.Kickers())
}

// Contender is one player's hand in a showdown ranking.
type Contender struct {
	Name   string
	Hole   []poker.Card
	Result poker.Result
	Best   [5]poker.Card
}

// Showdown prints every contender with the winners marked.
func (p *Printer) Showdown(board []poker.Card, contenders []Contender, winners []int) {
	fmt.Fprintf(p.w, "%s\n%s\n\n", p.styles.Header.Render("board"), p.Cards(board))

	won := make(map[int]bool, len(winners))
	for _, w := range winners {
		won[w] = true
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		p.styles.Header.Render("player"),
		p.styles.Header.Render("hole"),
		p.styles.Header.Render("hand"),
		p.styles.Header.Render("result"))
	for i, c := range contenders {
		result := ""
		switch {
		case won[i] && len(winners) > 1:
			result = p.styles.Tie.Render("split")
		case won[i]:
			result = p.styles.Win.Render("wins")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.styles.Hand.Render(c.Name), p.Cards(c.Hole),
			p.styles.Category.Render(c.Result.String()), result)
	}
	tw.Flush()
}

// Outcome prints a finished hand with chip movements.
func (p *Printer) Outcome(o *holdem.Outcome) {
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Header.Render("hand"), p.styles.Info.Render(o.HandID))
	fmt.Fprintf(p.w, "%s  %s\n", p.styles.Header.Render("flop"), p.Cards(o.Board[:3]))
	fmt.Fprintf(p.w, "%s  %s\n", p.styles.Header.Render("turn"), p.Card(o.Board[3]))
	fmt.Fprintf(p.w, "%s %s\n\n", p.styles.Header.Render("river"), p.Card(o.Board[4]))

	won := make(map[int]bool, len(o.Winners))
	for _, w := range o.Winners {
		won[w] = true
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		p.styles.Header.Render("player"),
		p.styles.Header.Render("hole"),
		p.styles.Header.Render("hand"),
		p.styles.Header.Render("won"),
		p.styles.Header.Render("chips"))
	for i, pl := range o.Players {
		wonStr := "."
		if won[i] {
			wonStr = p.styles.Win.Render(fmt.Sprintf("+%d", pl.Won))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", p.styles.Hand.Render(pl.Name), p.Cards(pl.Hole[:]),
			p.styles.Category.Render(pl.Hand.String()), wonStr, pl.ChipsAfter)
	}
	tw.Flush()

	if o.Split() {
		fmt.Fprintf(p.w, "\n%s pot of %d split %d ways\n", p.styles.Tie.Render("tie:"), o.Pot, len(o.Winners))
	} else {
		w := o.Players[o.Winners[0]]
		fmt.Fprintf(p.w, "\n%s %s takes %d with %s\n", p.styles.Win.Render("winner:"), w.Name, o.Pot, w.Hand)
	}
}

// Equity prints win and tie rates per hand, optionally with the category
// breakdown.
func (p *Printer) Equity(r *equity.Report, board []poker.Card, possibilities bool) {
	if len(board) > 0 {
		fmt.Fprintf(p.w, "%s\n%s\n\n", p.styles.Header.Render("board"), p.Cards(board))
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		p.styles.Header.Render("hand"),
		p.styles.Header.Render("win"),
		p.styles.Header.Render("tie"),
		p.styles.Header.Render("equity"))
	for i, pl := range r.Players {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			p.styles.Hand.Render(p.Cards(pl.Hole[:])),
			p.styles.Win.Render(percent(r.WinRate(i))),
			p.styles.Tie.Render(percent(r.TieRate(i))),
			p.styles.Percent.Render(percent(r.Equity(i))))
	}
	tw.Flush()

	if possibilities {
		fmt.Fprintln(p.w)
		p.possibilities(r)
	}

	method := "samples"
	if r.Exhaustive {
		method = "run-outs"
	}
	fmt.Fprintf(p.w, "\n%d %s in %v\n", r.Trials, method, r.Elapsed.Truncate(time.Millisecond))
}

func (p *Printer) possibilities(r *equity.Report) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s", p.styles.Category.Render("hand"))
	for _, pl := range r.Players {
		fmt.Fprintf(tw, "\t%s", p.styles.Hand.Render(p.Cards(pl.Hole[:])))
	}
	fmt.Fprintln(tw)

	for _, cat := range poker.Categories {
		seen := false
		for i := range r.Players {
			if r.Players[i].Categories[cat] > 0 {
				seen = true
			}
		}
		if !seen {
			continue
		}
		fmt.Fprintf(tw, "%s", p.styles.Category.Render(cat.String()))
		for i := range r.Players {
			cell := "."
			if r.Players[i].Categories[cat] > 0 {
				cell = percent(r.CategoryRate(i, cat))
			}
			fmt.Fprintf(tw, "\t%s", p.styles.Percent.Render(cell))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
