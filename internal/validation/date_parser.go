package validation

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// DateParser turns free text into a point in time.
type DateParser interface {
	Parse(text string) (time.Time, bool)
}

// NaturalDateParser understands absolute dates ("2026-10-20 17:00") and
// English expressions ("tomorrow", "next friday", "in 3 days"), relative to
// the clock.
type NaturalDateParser struct {
	clock func() time.Time
	when  *when.Parser
}

// NewNaturalDateParser creates a parser. A nil clock means time.Now.
func NewNaturalDateParser(clock func() time.Time) *NaturalDateParser {
	if clock == nil {
		clock = time.Now
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return &NaturalDateParser{
		clock: clock,
		when:  w,
	}
}

// Parse returns the time described by text, and false unless the whole
// text reads as a date.
func (p *NaturalDateParser) Parse(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	ref := p.clock()

	if t, err := now.With(ref).Parse(text); err == nil {
		return t, true
	}

	// when matches substrings; "2026-02-30" would otherwise read as 02:30.
	result, err := p.when.Parse(text, ref)
	if err != nil || result == nil || result.Index != 0 || len(result.Text) != len(text) {
		return time.Time{}, false
	}
	return result.Time, true
}
