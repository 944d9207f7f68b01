package game

import (
	"fmt"

	"github.com/vovakirdan/space-debris/internal/core"
	"github.com/vovakirdan/space-debris/internal/sched"
)

// YearCounter advances the clock by one year every ticksPerYear ticks.
// It never completes.
type YearCounter struct {
	clock        *Clock
	ticksPerYear int
	elapsed      int
}

// NewYearCounter creates the counter.
func NewYearCounter(clock *Clock, ticksPerYear int) *YearCounter {
	return &YearCounter{clock: clock, ticksPerYear: max(ticksPerYear, 1)}
}

// Step implements sched.Task.
func (y *YearCounter) Step(_ sched.Spawner) bool {
	y.elapsed++
	if y.elapsed > y.ticksPerYear {
		y.clock.advance()
		y.elapsed = 1
	}
	return false
}

// PhraseSource returns the milestone phrase for a year, if any.
type PhraseSource func(year int) (string, bool)

// PhraseBanner shows the current year in the bottom-left corner and, on a
// milestone year, a short historical phrase next to it for a while.
// It never completes.
type PhraseBanner struct {
	surface core.Surface
	clock   *Clock
	phrases PhraseSource
	hold    int

	shownYear  int
	phrase     string
	phraseCol  int
	phraseLeft int
}

// NewPhraseBanner creates the banner. Each phrase stays for holdTicks ticks.
func NewPhraseBanner(surface core.Surface, clock *Clock, phrases PhraseSource, holdTicks int) *PhraseBanner {
	return &PhraseBanner{surface: surface, clock: clock, phrases: phrases, hold: max(holdTicks, 1)}
}

// YearText formats the year line.
func YearText(year int) string {
	return fmt.Sprintf("Year — %d", year)
}

// Step implements sched.Task.
func (p *PhraseBanner) Step(_ sched.Spawner) bool {
	maxRow, _ := p.surface.Bounds()
	row := maxRow - 2
	year := p.clock.Year()
	text := YearText(year)
	p.surface.Draw(row, 2, text, core.StyleNormal)

	if p.phraseLeft > 0 {
		p.phraseLeft--
		if p.phraseLeft == 0 {
			p.surface.Erase(row, p.phraseCol, p.phrase)
			p.phrase = ""
			return false
		}
		// Falling debris may have erased part of it.
		p.surface.Draw(row, p.phraseCol, p.phrase, core.StyleNormal)
		return false
	}

	if year == p.shownYear || p.phrases == nil {
		return false
	}
	if phrase, ok := p.phrases(year); ok {
		p.shownYear = year
		p.phrase = phrase
		p.phraseCol = 2 + len([]rune(text)) + 2
		p.phraseLeft = p.hold
		p.surface.Draw(row, p.phraseCol, p.phrase, core.StyleNormal)
	}
	return false
}

// Phrase returns the phrase on screen, or "" when none is shown.
func (p *PhraseBanner) Phrase() string {
	return p.phrase
}
