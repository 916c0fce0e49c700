// Package render maps episodes to display cards and writes them to a display.
package render

import (
	"github.com/epibrowse/epibrowse/format"
	"github.com/epibrowse/epibrowse/source"
	"github.com/samber/lo"
)

const (
	UnknownName      = "Unknown Episode"
	NoCode           = "N/A"
	PlaceholderImage = "https://placehold.co/250x140?text=NO+IMAGE+AVAILABLE"
	PlaceholderAlt   = "No image available"
	NoLink           = "#"
)

// Image is the thumbnail of a card.
type Image struct {
	URL string `json:"url" jsonschema:"description=Thumbnail URL, a placeholder when the episode has none"`
	Alt string `json:"alt" jsonschema:"description=Alternative text of the thumbnail"`
}

// Card is the display model of a single episode. Every field is filled,
// missing episode data is replaced with a fallback.
type Card struct {
	Name    string `json:"name" jsonschema:"description=Episode name"`
	Code    string `json:"code" jsonschema:"description=Episode code such as S01E05 or N/A"`
	Image   Image  `json:"image"`
	Link    string `json:"link" jsonschema:"description=Episode page or # when unknown"`
	Summary string `json:"summary" jsonschema:"description=Summary as plain text"`
}

// NewCard builds the card of one episode.
func NewCard(episode *source.Episode) Card {
	name := episode.Name.OrEmpty()
	if name == "" {
		name = UnknownName
	}

	code := NoCode
	if episode.HasCode() {
		code = episode.Code()
	}

	image := Image{URL: PlaceholderImage, Alt: PlaceholderAlt}
	if img, ok := episode.Image.Get(); ok && img.Medium != "" {
		image = Image{URL: img.Medium, Alt: name + " thumbnail"}
	}

	link := episode.URL.OrEmpty()
	if link == "" {
		link = NoLink
	}

	return Card{
		Name:    name,
		Code:    code,
		Image:   image,
		Link:    link,
		Summary: format.Summary(episode.Summary),
	}
}

// Cards builds one card per episode in input order.
func Cards(episodes []*source.Episode) []Card {
	return lo.Map(episodes, func(e *source.Episode, _ int) Card {
		return NewCard(e)
	})
}
