// Package source defines the show and episode records decoded from the listings API.
package source

import (
	"strconv"

	"github.com/samber/mo"
)

// Show is a content source for episodes. Immutable once fetched.
type Show struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	URL       string            `json:"url,omitempty"`
	Language  string            `json:"language,omitempty"`
	Genres    []string          `json:"genres,omitempty"`
	Premiered string            `json:"premiered,omitempty"`
	Summary   mo.Option[string] `json:"summary"`
}

func (s *Show) String() string {
	if s.Name == "" {
		return "Show #" + strconv.Itoa(s.ID)
	}
	return s.Name
}

// Year is the premiere year, or "" when unknown.
func (s *Show) Year() string {
	if len(s.Premiered) < 4 {
		return ""
	}
	return s.Premiered[:4]
}
