package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"BounceSentry/internal/model"
)

// RESTFetcher implements Fetcher against a generic daily-bars REST API.
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTFetcher creates a new fetcher with optional proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string) *RESTFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RESTFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape from the bars endpoint.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    int64   `json:"volume"`
}

// FetchBar returns the latest daily bar. Omitted open/high/low fields
// default to the close so range metrics degrade to neutral downstream.
func (f *RESTFetcher) FetchBar(symbol string) (model.PriceBar, error) {
	bars, err := f.fetchBars(symbol, 1)
	if err != nil {
		return model.PriceBar{}, err
	}
	if len(bars) == 0 {
		return model.PriceBar{}, fmt.Errorf("no bars returned for %s", symbol)
	}
	return bars[len(bars)-1], nil
}

// FetchHistory returns the closes of the most recent `days` daily bars,
// oldest first.
func (f *RESTFetcher) FetchHistory(symbol string, days int) ([]float64, error) {
	bars, err := f.fetchBars(symbol, days)
	if err != nil {
		return nil, err
	}
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes, nil
}

func (f *RESTFetcher) fetchBars(symbol string, limit int) ([]model.PriceBar, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&limit=%d",
		f.BaseURL, url.QueryEscape(symbol), limit)
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}
	var raw []restBar
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}

	// Ensure chronological order before converting.
	sort.Slice(raw, func(i, j int) bool { return raw[i].Timestamp < raw[j].Timestamp })

	bars := make([]model.PriceBar, len(raw))
	for i, rb := range raw {
		bars[i] = normalizeBar(rb)
	}
	return bars, nil
}

func normalizeBar(rb restBar) model.PriceBar {
	b := model.PriceBar{
		Open:   rb.Open,
		High:   rb.High,
		Low:    rb.Low,
		Close:  rb.Close,
		Volume: rb.Volume,
	}
	if b.Open == 0 {
		b.Open = b.Close
	}
	if b.High == 0 {
		b.High = b.Close
	}
	if b.Low == 0 {
		b.Low = b.Close
	}
	if b.Volume < 0 {
		b.Volume = 0
	}
	return b
}
