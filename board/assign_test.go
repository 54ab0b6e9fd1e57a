package board

import (
	"testing"

	"github.com/theoremus-urban-solutions/departure-display/config"
	"github.com/theoremus-urban-solutions/departure-display/monitor"
)

func group(route, direction string, countdowns ...int) *monitor.DepartureGroup {
	return &monitor.DepartureGroup{RouteName: route, DirectionText: direction, Countdowns: countdowns}
}

func routeNames(bucket []*monitor.DepartureGroup) []string {
	out := make([]string, len(bucket))
	for i, g := range bucket {
		out[i] = g.RouteName
	}
	return out
}

func TestApplyFilter(t *testing.T) {
	groups := []*monitor.DepartureGroup{group("D", "A"), group("2", "B"), group("U6", "C")}
	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{name: "empty passes through", filter: "", want: []string{"D", "2", "U6"}},
		{name: "whitelist keeps order", filter: "D,2", want: []string{"D", "2"}},
		{name: "whitespace tolerated", filter: " 2 , U6 ", want: []string{"2", "U6"}},
		{name: "no match", filter: "71", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := routeNames(applyFilter(groups, tt.filter))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestAssign_LexicographicSort(t *testing.T) {
	main := []*monitor.DepartureGroup{
		group("A", "x", 5, 9),
		group("B", "y", 5, 3),
		group("C", "z", 2),
	}
	s := config.Settings{LineCount: 1}
	buckets := Assign(main, nil, s)
	if len(buckets) != 1 {
		t.Fatalf("expected one bucket, got %d", len(buckets))
	}
	// Group countdowns sort ascending first, so B becomes [3,5] and the
	// bucket orders [2] < [3,5] < [5,9].
	want := []string{"C", "B", "A"}
	got := routeNames(buckets[0])
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	if b := buckets[0][1]; b.Countdowns[0] != 3 || b.Countdowns[1] != 5 {
		t.Errorf("group countdowns should be sorted ascending, got %v", b.Countdowns)
	}
}

func TestAssign_UnpinnedLinesShareData(t *testing.T) {
	main := []*monitor.DepartureGroup{group("25", "a", 4), group("26", "b", 2)}
	s := config.Settings{LineCount: 2}
	buckets := Assign(main, nil, s)
	if len(buckets) != 2 {
		t.Fatalf("expected two buckets, got %d", len(buckets))
	}
	for i, b := range buckets {
		if len(b) != 2 {
			t.Fatalf("bucket %d should hold the whole sequence, got %d groups", i, len(b))
		}
	}
	if buckets[0][0] != buckets[1][0] {
		t.Error("unpinned buckets should share the same group values")
	}
}

func TestAssign_PinnedLine(t *testing.T) {
	main := []*monitor.DepartureGroup{group("25", "a", 4), group("26", "b", 2), group("25", "c", 1)}
	s := config.Settings{LineCount: 2, Line2Name: "25"}
	buckets := Assign(main, nil, s)
	got := routeNames(buckets[1])
	if len(got) != 2 || got[0] != "25" || got[1] != "25" {
		t.Fatalf("pinned bucket should only hold route 25, got %v", got)
	}
	if buckets[1][0].DirectionText != "c" {
		t.Errorf("pinned bucket should sort by countdowns, got %+v", buckets[1][0])
	}
}

func TestAssign_ThirdLineFromAltStop(t *testing.T) {
	main := []*monitor.DepartureGroup{group("25", "a", 4)}
	alt := []*monitor.DepartureGroup{group("31", "b", 6), group("32", "c", 3)}
	s := config.Settings{StopID: "1", LineCount: 3, Line3StopID: "2"}
	buckets := Assign(main, alt, s)
	got := routeNames(buckets[2])
	if len(got) != 2 || got[0] != "32" {
		t.Fatalf("third line should come from the alt stop, sorted, got %v", got)
	}
	if len(buckets[0]) != 1 || buckets[0][0].RouteName != "25" {
		t.Errorf("lines 1-2 should come from the main stop, got %v", routeNames(buckets[0]))
	}
}

func TestAssign_ThirdLineFilterFallsBackToGlobal(t *testing.T) {
	alt := []*monitor.DepartureGroup{group("31", "b", 6), group("32", "c", 3)}
	s := config.Settings{StopID: "1", LineCount: 3, Line3StopID: "2", RouteFilter: "31"}
	buckets := Assign(nil, alt, s)
	got := routeNames(buckets[2])
	if len(got) != 1 || got[0] != "31" {
		t.Fatalf("unset line-3 filter should fall back to the global filter, got %v", got)
	}

	s.Line3Filter = "32"
	buckets = Assign(nil, alt, s)
	got = routeNames(buckets[2])
	if len(got) != 1 || got[0] != "32" {
		t.Fatalf("line-3 filter should win over the global filter, got %v", got)
	}
}

func TestAssign_ThirdLineSameStopReusesMain(t *testing.T) {
	main := []*monitor.DepartureGroup{group("25", "a", 4), group("26", "b", 2)}
	s := config.Settings{StopID: "1", LineCount: 3, Line3StopID: "1", Line3Filter: "26"}
	buckets := Assign(main, nil, s)
	got := routeNames(buckets[2])
	if len(got) != 1 || got[0] != "26" {
		t.Fatalf("same-stop third line should reuse the main result with its own filter, got %v", got)
	}
}
