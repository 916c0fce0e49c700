package source

import (
	"encoding/json"

	"github.com/epibrowse/epibrowse/format"
	"github.com/samber/mo"
	"github.com/spf13/cast"
)

// Image holds the artwork URLs of an episode.
type Image struct {
	Medium   string `json:"medium"`
	Original string `json:"original,omitempty"`
}

// Episode is a single entry of a show's episode list. Optional fields stay
// None when the API omits them or sends null; consumers pick the fallback.
type Episode struct {
	ID      int               `json:"id"`
	Name    mo.Option[string] `json:"name"`
	Season  mo.Option[int]    `json:"season"`
	Number  mo.Option[int]    `json:"number"`
	Image   mo.Option[Image]  `json:"image"`
	URL     mo.Option[string] `json:"url"`
	Summary mo.Option[string] `json:"summary"`
	Airdate string            `json:"airdate,omitempty"`
}

// UnmarshalJSON accepts numbers sent as strings or floats for season and
// number, and treats anything unparsable as absent instead of failing the
// whole list.
func (e *Episode) UnmarshalJSON(data []byte) error {
	type plain Episode
	var aux struct {
		plain
		Season any `json:"season"`
		Number any `json:"number"`
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*e = Episode(aux.plain)
	e.Season = lenientInt(aux.Season)
	e.Number = lenientInt(aux.Number)
	return nil
}

func lenientInt(v any) mo.Option[int] {
	if v == nil {
		return mo.None[int]()
	}

	n, err := cast.ToIntE(v)
	if err != nil {
		return mo.None[int]()
	}
	return mo.Some(n)
}

// Code is the canonical episode code, S00E00 when season or number is unusable.
func (e *Episode) Code() string {
	return format.Code(e.Season.OrEmpty(), e.Number.OrEmpty())
}

// HasCode reports whether both season and number are present and positive.
func (e *Episode) HasCode() bool {
	season, okSeason := e.Season.Get()
	number, okNumber := e.Number.Get()
	return okSeason && okNumber && season > 0 && number > 0
}

// PlainSummary is the summary with markup removed, "" when absent.
func (e *Episode) PlainSummary() string {
	return format.PlainText(e.Summary.OrEmpty())
}

func (e *Episode) String() string {
	return e.Code() + " - " + e.Name.OrElse("Unknown Episode")
}
