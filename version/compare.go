// Package version checks for newer releases of the application.
package version

import (
	"fmt"
	"strings"
)

type semver struct {
	major, minor, patch int
}

func parse(s string) (semver, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		s = s[:i]
	}

	var v semver
	if _, err := fmt.Sscanf(s, "%d.%d.%d", &v.major, &v.minor, &v.patch); err != nil {
		return semver{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return v, nil
}

// Compare returns 1 if a is newer than b, -1 if older and 0 if equal.
// A leading v and any pre-release or build suffix are ignored.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range [][2]int{
		{av.major, bv.major},
		{av.minor, bv.minor},
		{av.patch, bv.patch},
	} {
		switch {
		case pair[0] > pair[1]:
			return 1, nil
		case pair[0] < pair[1]:
			return -1, nil
		}
	}

	return 0, nil
}
