package inline

import (
	"encoding/json"
	"io"

	"github.com/epibrowse/epibrowse/browse"
	"github.com/epibrowse/epibrowse/render"
	"github.com/epibrowse/epibrowse/source"
)

// Show identifies the show the cards belong to.
type Show struct {
	ID   int    `json:"id" jsonschema:"description=Listings API show id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Count mirrors the count label.
type Count struct {
	Displayed int    `json:"displayed"`
	Total     int    `json:"total"`
	Label     string `json:"label" jsonschema:"description=Displayed over total such as 2 / 3"`
}

// Output is the JSON document printed with --json.
type Output struct {
	Show   Show          `json:"show"`
	Filter string        `json:"filter" jsonschema:"enum=none,enum=search,enum=selection"`
	Count  Count         `json:"count"`
	Cards  []render.Card `json:"cards"`
}

func newOutput(show *source.Show, state browse.State) *Output {
	out := &Output{
		Filter: state.Filter.Kind.String(),
		Count: Count{
			Displayed: len(state.Displayed),
			Total:     len(state.Full),
			Label:     state.Count(),
		},
		Cards: render.Cards(state.Displayed),
	}

	if show != nil {
		out.Show = Show{ID: show.ID, Name: show.Name, URL: show.URL}
	}

	return out
}

func writeJson(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
