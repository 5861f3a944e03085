package xref

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ngramSpec = regexp.MustCompile(`(?i)^(\d+)\s*(?:-?\s*gram)?$`)

// ParseMetric selects a metric from a user-supplied string.
//
// An empty spec selects Jaccard with the given threshold. Strings such as
// "2-gram", "3gram" or "2" select n-gram matching. Anything else yields the
// default Jaccard metric (threshold 0.3) together with an error wrapping
// ErrInvalidMetricSpec; callers are expected to warn and continue with
// the returned metric.
func ParseMetric(spec string, threshold float64) (Metric, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, "jaccard") {
		return NewJaccard(threshold), nil
	}

	m := ngramSpec.FindStringSubmatch(spec)
	if m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 {
			return NewNGram(n), nil
		}
	}

	return NewJaccard(DefaultThreshold), fmt.Errorf("%w: %q (falling back to jaccard %.1f)", ErrInvalidMetricSpec, spec, DefaultThreshold)
}
