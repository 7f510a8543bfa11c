package rangeropt

import (
	"strconv"
	"strings"
)

// coercePositiveInt parses raw as an integer >= 1 and stores it in dst
func coercePositiveInt(option, raw string, dst *int) error {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return &InvalidValueError{Option: option, Raw: raw, Reason: "a positive integer"}
	}
	*dst = v

	return nil
}

// coerceNonNegativeInt parses raw as an integer >= 0 and stores it in dst
func coerceNonNegativeInt(option, raw string, dst *int) error {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return &InvalidValueError{Option: option, Raw: raw, Reason: "a non-negative integer"}
	}
	*dst = v

	return nil
}

// coerceFraction accepts a real value in (0,1]. Note the closed upper bound,
// unlike quantiles.
func coerceFraction(c *Config, raw string) error {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || v > 1 {
		return &InvalidValueError{Option: "fraction", Raw: raw, Reason: "a value in (0,1]"}
	}
	c.Fraction = v

	return nil
}

// coerceQuantiles parses a comma separated list of reals, each strictly
// inside (0,1). One bad entry rejects the whole list, nothing is kept.
func coerceQuantiles(c *Config, raw string) error {
	parts := splitList(raw)
	quantiles := make([]float64, 0, len(parts))
	for _, part := range parts {
		q, err := strconv.ParseFloat(part, 64)
		if err != nil || q <= 0 || q >= 1 {
			return &InvalidValueError{Option: "quantiles", Raw: raw,
				Reason: "a comma separated list of values in the range (0, 1)"}
		}
		quantiles = append(quantiles, q)
	}
	c.Quantiles = quantiles

	return nil
}

// treeTypeCodes is the exhaustive mapping of command-line codes to tree
// types. Codes of reserved types are deliberately absent.
var treeTypeCodes = map[int]TreeType{
	TreeQuantile.Code():     TreeQuantile,
	TreeInstrumental.Code(): TreeInstrumental,
}

// coerceTreeType maps a numeric code to a TreeType, rejecting unmapped codes
func coerceTreeType(c *Config, raw string) error {
	code, err := strconv.Atoi(raw)
	if err != nil {
		return &InvalidValueError{Option: "treetype", Raw: raw, Reason: "a supported tree type code (11 or 15)"}
	}
	treeType, ok := treeTypeCodes[code]
	if !ok {
		return &InvalidValueError{Option: "treetype", Raw: raw, Reason: "a supported tree type code (11 or 15)"}
	}
	c.TreeType = treeType

	return nil
}

// splitList splits a comma separated name list. Segments are kept as given,
// empty segments included; only a fully empty value yields an empty list.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	return strings.Split(raw, ",")
}
