// Package alphavantage fetches daily close prices from the Alpha
// Vantage market-data API.
//
// The free tier throttles aggressively and signals it inside a 200
// response body. The client retries a throttled call at the start of
// the next minute, a bounded number of times, through a Clock it can
// be given for tests.
package alphavantage

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fintrack/date"
)

// DefaultBaseURL is the Alpha Vantage query endpoint.
const DefaultBaseURL = "https://www.alphavantage.co/query"

// ErrRateLimited is returned when the API keeps throttling after every
// allowed retry.
var ErrRateLimited = errors.New("alpha vantage rate limited")

// Clock abstracts time for the retry policy.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Client calls the Alpha Vantage API. The zero value is not usable;
// use New, then override fields for testing.
type Client struct {
	APIKey     string
	BaseURL    string       // DefaultBaseURL if empty
	HTTPClient *http.Client // a daily disk-caching client by default
	Clock      Clock        // real time by default
	MaxRetries int          // additional attempts after a throttled call
}

// New returns a client with the default endpoint, a daily caching HTTP
// client, the system clock and 3 retries.
func New(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		HTTPClient: newDailyCachingClient(),
		Clock:      systemClock{},
		MaxRetries: 3,
	}
}

func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

func (c *Client) clock() Clock {
	if c.Clock == nil {
		return systemClock{}
	}
	return c.Clock
}

// get performs one API call, waiting out rate-limit notes up to
// MaxRetries times, and returns the decoded JSON object.
func (c *Client) get(params url.Values) (map[string]any, error) {
	params.Set("apikey", c.APIKey)
	addr := c.baseURL() + "?" + params.Encode()

	for attempt := 0; ; attempt++ {
		var jobj map[string]any
		if err := jwget(c.httpClient(), addr, &jobj); err != nil {
			return nil, err
		}
		if note, throttled := rateLimitNote(jobj); throttled {
			if attempt >= c.MaxRetries {
				return nil, fmt.Errorf("%s after %d attempts (%s): %w",
					params.Get("symbol"), attempt+1, note, ErrRateLimited)
			}
			c.waitForNextMinute()
			continue
		}
		if msg, ok := jobj["Error Message"].(string); ok {
			return nil, fmt.Errorf("alpha vantage: %s: %s", params.Get("symbol"), msg)
		}
		return jobj, nil
	}
}

// rateLimitNote detects the in-band throttling signal: a 200 response
// whose body is a "Note" or "Information" message instead of data.
func rateLimitNote(jobj map[string]any) (string, bool) {
	for _, key := range []string{"Note", "Information"} {
		if msg, ok := jobj[key].(string); ok {
			return msg, true
		}
	}
	return "", false
}

// waitForNextMinute sleeps until the start of the next minute, when the
// per-minute quota resets.
func (c *Client) waitForNextMinute() {
	now := c.clock().Now()
	next := now.Truncate(time.Minute).Add(time.Minute)
	c.clock().Sleep(next.Sub(now))
}

// Daily returns the daily close prices of a symbol from a date
// forward. It first requests the compact window (100 points) and falls
// back to the full history when the window does not reach back to
// 'from'. A zero 'from' means the full history.
func (c *Client) Daily(symbol string, from date.Date) (date.History[float64], error) {
	hist, err := c.daily(symbol, "compact")
	if err != nil {
		return hist, err
	}
	first, _ := hist.First()
	if from.IsZero() || first.IsZero() || !first.After(from) {
		return trimBefore(hist, from), nil
	}
	hist, err = c.daily(symbol, "full")
	if err != nil {
		return hist, err
	}
	return trimBefore(hist, from), nil
}

func (c *Client) daily(symbol, outputsize string) (date.History[float64], error) {
	var hist date.History[float64]
	params := url.Values{}
	params.Set("function", "TIME_SERIES_DAILY")
	params.Set("symbol", symbol)
	params.Set("outputsize", outputsize)
	jobj, err := c.get(params)
	if err != nil {
		return hist, err
	}

	series, ok := jobj["Time Series (Daily)"].(map[string]any)
	if !ok {
		return hist, fmt.Errorf("alpha vantage: %s: no daily time series in response", symbol)
	}
	for day, jvalues := range series {
		on, err := date.Parse(day)
		if err != nil {
			return hist, fmt.Errorf("alpha vantage: %s: %w", symbol, err)
		}
		values, ok := jvalues.(map[string]any)
		if !ok {
			return hist, fmt.Errorf("alpha vantage: %s: malformed candle on %s", symbol, day)
		}
		raw, ok := values["4. close"].(string)
		if !ok {
			return hist, fmt.Errorf("alpha vantage: %s: no close on %s", symbol, day)
		}
		close, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return hist, fmt.Errorf("alpha vantage: %s: close on %s: %w", symbol, day, err)
		}
		hist.Append(on, close)
	}
	return hist, nil
}

// trimBefore drops every point strictly before 'from'.
func trimBefore(hist date.History[float64], from date.Date) date.History[float64] {
	if from.IsZero() {
		return hist
	}
	var trimmed date.History[float64]
	for on, v := range hist.Values() {
		if !on.Before(from) {
			trimmed.Append(on, v)
		}
	}
	return trimmed
}

// Quote returns the latest price of a symbol and its trading day, from
// the GLOBAL_QUOTE endpoint.
func (c *Client) Quote(symbol string) (float64, date.Date, error) {
	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)
	jobj, err := c.get(params)
	if err != nil {
		return 0, date.Date{}, err
	}

	price, err := jsonString(jobj, `$["Global Quote"]["05. price"]`)
	if err != nil {
		return 0, date.Date{}, fmt.Errorf("alpha vantage: %s: %w", symbol, err)
	}
	value, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return 0, date.Date{}, fmt.Errorf("alpha vantage: %s: price %q: %w", symbol, price, err)
	}
	day, err := jsonString(jobj, `$["Global Quote"]["07. latest trading day"]`)
	if err != nil {
		return 0, date.Date{}, fmt.Errorf("alpha vantage: %s: %w", symbol, err)
	}
	on, err := date.Parse(day)
	if err != nil {
		return 0, date.Date{}, fmt.Errorf("alpha vantage: %s: %w", symbol, err)
	}
	return value, on, nil
}

// jsonString extracts a string value at a jsonpath.
func jsonString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("parsing %q: not a string: %v", path, jval)
	}
	return s, nil
}
