package text

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/unicode/bidi"
)

// resolveDirection runs the Unicode bidi algorithm over the string and
// returns the shaping direction of its dominant paragraph run. Labels are
// short single-run strings in practice, so the first run decides.
func resolveDirection(s string) di.Direction {
	p := bidi.Paragraph{}
	_, _ = p.SetString(s, bidi.DefaultDirection(bidi.Neutral))

	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}

	run := ordering.Run(0)
	return mapDirection(run.Direction() == bidi.RightToLeft)
}
