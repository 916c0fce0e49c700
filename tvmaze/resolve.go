package tvmaze

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/epibrowse/epibrowse/source"
)

// Resolve finds a show by numeric id or, failing that, by name using the
// best search match.
func (c *Client) Resolve(ctx context.Context, ref string) (*source.Show, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("empty show reference")
	}

	if id, err := strconv.Atoi(ref); err == nil {
		return c.Show(ctx, id)
	}

	shows, err := c.SearchShows(ctx, ref)
	if err != nil {
		return nil, err
	}

	if len(shows) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}

	return shows[0], nil
}
