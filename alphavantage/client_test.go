package alphavantage

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/etnz/fintrack/date"
)

// fakeClock advances only when slept on, so the retry policy is tested
// without real delays.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func (c *fakeClock) Now() time.Time        { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.slept = append(c.slept, d); c.now = c.now.Add(d) }

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeClock) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	clock := &fakeClock{now: time.Date(2026, 8, 28, 10, 30, 15, 0, time.UTC)}
	return &Client{
		APIKey:     "demo",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		Clock:      clock,
		MaxRetries: 3,
	}, clock
}

func dailyPayload(closes map[string]string) string {
	series := ""
	for day, close := range closes {
		if series != "" {
			series += ","
		}
		series += fmt.Sprintf(`%q: {"1. open": "0", "4. close": %q}`, day, close)
	}
	return `{"Meta Data": {"2. Symbol": "CBA"}, "Time Series (Daily)": {` + series + `}}`
}

func TestDaily(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "TIME_SERIES_DAILY" {
			t.Errorf("function = %q", got)
		}
		fmt.Fprint(w, dailyPayload(map[string]string{
			"2020-01-02": "80.50",
			"2020-01-03": "81.00",
			"2020-01-06": "79.25",
		}))
	})

	hist, err := c.Daily("CBA", date.MustParse("2020-01-03"))
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if hist.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (2020-01-02 trimmed)", hist.Len())
	}
	if v, ok := hist.Get(date.MustParse("2020-01-03")); !ok || v != 81 {
		t.Errorf("close on 2020-01-03 = %v, %v", v, ok)
	}
	if first, _ := hist.First(); first != date.MustParse("2020-01-03") {
		t.Errorf("First() = %v, want 2020-01-03", first)
	}
}

func TestDaily_FullFallback(t *testing.T) {
	var sizes []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		size := r.URL.Query().Get("outputsize")
		sizes = append(sizes, size)
		if size == "compact" {
			fmt.Fprint(w, dailyPayload(map[string]string{"2020-02-03": "81.00"}))
			return
		}
		fmt.Fprint(w, dailyPayload(map[string]string{
			"2020-01-02": "80.50",
			"2020-02-03": "81.00",
		}))
	})

	hist, err := c.Daily("CBA", date.MustParse("2020-01-01"))
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if want := []string{"compact", "full"}; len(sizes) != 2 || sizes[0] != want[0] || sizes[1] != want[1] {
		t.Fatalf("requests = %v, want %v", sizes, want)
	}
	if hist.Len() != 2 {
		t.Errorf("Len() = %d, want 2", hist.Len())
	}
}

func TestDaily_NoFallbackWhenCompactCovers(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, dailyPayload(map[string]string{"2020-01-02": "80.50"}))
	})

	if _, err := c.Daily("CBA", date.MustParse("2020-01-02")); err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDaily_RateLimitRetry(t *testing.T) {
	calls := 0
	c, clock := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 2 {
			fmt.Fprint(w, `{"Note": "Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`)
			return
		}
		fmt.Fprint(w, dailyPayload(map[string]string{"2020-01-02": "80.50"}))
	})

	hist, err := c.Daily("CBA", date.Date{})
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if hist.Len() != 1 {
		t.Errorf("Len() = %d, want 1", hist.Len())
	}
	// two throttled calls, two waits, each to the top of the next minute
	if len(clock.slept) != 2 {
		t.Fatalf("slept %d times, want 2", len(clock.slept))
	}
	if clock.slept[0] != 45*time.Second {
		t.Errorf("first wait = %v, want 45s (10:30:15 to 10:31:00)", clock.slept[0])
	}
	if clock.slept[1] != time.Minute {
		t.Errorf("second wait = %v, want 1m", clock.slept[1])
	}
}

func TestDaily_RateLimitExhausted(t *testing.T) {
	c, clock := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Information": "API call frequency exceeded"}`)
	})
	c.MaxRetries = 2

	_, err := c.Daily("CBA", date.Date{})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("Daily = %v, want ErrRateLimited", err)
	}
	if len(clock.slept) != 2 {
		t.Errorf("slept %d times, want MaxRetries=2", len(clock.slept))
	}
}

func TestDaily_ErrorMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Error Message": "Invalid API call."}`)
	})
	if _, err := c.Daily("NOPE", date.Date{}); err == nil {
		t.Fatal("Daily on an API error should fail")
	}
}

func TestQuote(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "GLOBAL_QUOTE" {
			t.Errorf("function = %q", got)
		}
		fmt.Fprint(w, `{"Global Quote": {
			"01. symbol": "CBA",
			"05. price": "82.3400",
			"07. latest trading day": "2026-08-27"
		}}`)
	})

	price, day, err := c.Quote("CBA")
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if price != 82.34 {
		t.Errorf("price = %v, want 82.34", price)
	}
	if day != date.MustParse("2026-08-27") {
		t.Errorf("day = %v, want 2026-08-27", day)
	}
}
