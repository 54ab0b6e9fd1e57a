package board

import (
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/departure-display/config"
	"github.com/theoremus-urban-solutions/departure-display/monitor"
)

// LineBuckets is the per-display-line result set, one ordered bucket per
// configured line. It is rebuilt from scratch on every successful
// acquisition and swapped in whole; stale buckets are discarded, never
// mutated.
type LineBuckets [][]*monitor.DepartureGroup

// splitFilter turns a comma-separated whitelist into its entries; empty
// input yields nil (pass-through).
func splitFilter(filter string) []string {
	if filter == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(filter, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// applyFilter keeps only groups whose route is whitelisted, preserving
// relative order. A nil/empty whitelist passes everything through.
func applyFilter(groups []*monitor.DepartureGroup, filter string) []*monitor.DepartureGroup {
	names := splitFilter(filter)
	if len(names) == 0 {
		return groups
	}
	out := make([]*monitor.DepartureGroup, 0, len(groups))
	for _, g := range groups {
		for _, n := range names {
			if g.RouteName == n {
				out = append(out, g)
				break
			}
		}
	}
	return out
}

// compareCountdowns orders two countdown sequences lexicographically,
// ordinary sequence comparison of two integer lists.
func compareCountdowns(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// bucketFor selects a line's groups: the whole sequence when the line is
// unpinned, otherwise the subsequence matching the pinned route. The
// returned slice is owned by the bucket so sorting never aliases a sibling
// line.
func bucketFor(groups []*monitor.DepartureGroup, pinned string) []*monitor.DepartureGroup {
	var out []*monitor.DepartureGroup
	if pinned == "" {
		out = append(out, groups...)
	} else {
		for _, g := range groups {
			if g.RouteName == pinned {
				out = append(out, g)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return compareCountdowns(out[i].Countdowns, out[j].Countdowns) < 0
	})
	return out
}

// Assign buckets the parse results into per-display-line lists. main is
// the main stop's groups; alt is the independent third-line stop's groups
// and may be nil when no second fetch happened. Countdowns inside each
// group are sorted ascending here, once, before any bucket ordering.
func Assign(main, alt []*monitor.DepartureGroup, s config.Settings) LineBuckets {
	for _, g := range main {
		sort.Ints(g.Countdowns)
	}
	for _, g := range alt {
		sort.Ints(g.Countdowns)
	}

	filtered := applyFilter(main, s.RouteFilter)
	buckets := make(LineBuckets, s.LineCount)
	for i := 0; i < s.LineCount; i++ {
		if i == 2 {
			// Third line: independent stop and filter when configured,
			// falling back to the main result and the global filter.
			source := filtered
			if s.UsesAltStop() || s.Line3Filter != "" {
				src := main
				if s.UsesAltStop() {
					src = alt
				}
				filter := s.Line3Filter
				if filter == "" {
					filter = s.RouteFilter
				}
				source = applyFilter(src, filter)
			}
			buckets[i] = bucketFor(source, s.Line3Name)
			continue
		}
		buckets[i] = bucketFor(filtered, s.LineName(i+1))
	}
	return buckets
}
