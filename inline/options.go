// Package inline is the non-interactive front end used from scripts.
package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/epibrowse/epibrowse/browse"
)

// Options configures Run.
type Options struct {
	browse.StartOptions

	Out io.Writer
	// Search narrows the episodes like the search box.
	Search string
	// Episode picks a single episode, see ParseEpisode.
	Episode string
	Json    bool
	// Width wraps text output, 0 disables wrapping.
	Width int
}

// ParseEpisode turns an episode selector into an episode selector value.
// Accepted selectors are all, first, last and a zero based index.
func ParseEpisode(selector string, total int) (string, error) {
	selector = strings.ToLower(strings.TrimSpace(selector))

	var index int
	switch selector {
	case "", browse.AllValue:
		return browse.AllValue, nil
	case "first":
		index = 0
	case "last":
		index = total - 1
	default:
		n, err := strconv.Atoi(selector)
		if err != nil {
			return "", fmt.Errorf("invalid episode selector %q", selector)
		}
		index = n
	}

	if index < 0 || index >= total {
		return "", fmt.Errorf("episode %q out of range, the show has %d episodes", selector, total)
	}

	return strconv.Itoa(index), nil
}
