package date

import "testing"

func TestHistory_AppendKeepsOrder(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2020-03-01"), 3)
	h.Append(MustParse("2020-01-01"), 1)
	h.Append(MustParse("2020-02-01"), 2)

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
}

func TestHistory_AppendOverwrites(t *testing.T) {
	var h History[float64]
	day := MustParse("2020-01-01")
	h.Append(day, 1)
	h.Append(day, 2)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, ok := h.Get(day); !ok || v != 2 {
		t.Errorf("Get(%v) = %v, %v, want 2, true", day, v, ok)
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2020-01-10"), 10)
	h.Append(MustParse("2020-01-20"), 20)

	testCases := []struct {
		name   string
		day    string
		want   float64
		wantOk bool
	}{
		{name: "before any point", day: "2020-01-09", wantOk: false},
		{name: "exactly on a point", day: "2020-01-10", want: 10, wantOk: true},
		{name: "between points", day: "2020-01-15", want: 10, wantOk: true},
		{name: "after all points", day: "2020-02-01", want: 20, wantOk: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.ValueAsOf(MustParse(tc.day))
			if ok != tc.wantOk || got != tc.want {
				t.Errorf("ValueAsOf(%s) = %v, %v, want %v, %v", tc.day, got, ok, tc.want, tc.wantOk)
			}
		})
	}
}

func TestHistory_FirstLatest(t *testing.T) {
	var h History[string]
	if day, _ := h.Latest(); !day.IsZero() {
		t.Errorf("Latest() on empty history = %v, want zero date", day)
	}

	h.Append(MustParse("2020-06-01"), "mid")
	h.Append(MustParse("2020-01-01"), "first")
	h.Append(MustParse("2020-12-01"), "last")

	if day, v := h.First(); day != MustParse("2020-01-01") || v != "first" {
		t.Errorf("First() = %v, %q", day, v)
	}
	if day, v := h.Latest(); day != MustParse("2020-12-01") || v != "last" {
		t.Errorf("Latest() = %v, %q", day, v)
	}
}
