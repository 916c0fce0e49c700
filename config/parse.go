package config

import (
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Closest returns the registered key nearest to k by edit distance.
func Closest(k string) string {
	return lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		da, db := levenshtein.Distance(k, a), levenshtein.Distance(k, b)
		if da == db {
			return a < b
		}
		return da < db
	})
}

// Parse converts command line values to the type of the key's default.
func Parse(k string, values []string) (any, error) {
	field, ok := Default[k]
	if !ok {
		return nil, fmt.Errorf("unknown key %s", k)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%s: value is required", k)
	}

	switch field.Value.(type) {
	case string:
		return values[0], nil
	case int:
		v, err := cast.ToIntE(values[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer value %q", k, values[0])
		}
		return v, nil
	case bool:
		v, err := cast.ToBoolE(values[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean value %q", k, values[0])
		}
		return v, nil
	case []string:
		return values, nil
	default:
		return nil, fmt.Errorf("%s: unsupported type %T", k, field.Value)
	}
}
