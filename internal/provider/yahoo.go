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

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
type YahooFetcher struct {
	Client    *http.Client
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
	Suffix    string            // appended to unmapped symbols, e.g. ".KA" for PSX
}

// NewYahooFetcher creates a new Yahoo Finance fetcher. suffix is appended to
// symbols without an explicit mapping (Karachi listings use ".KA").
func NewYahooFetcher(proxyURL, suffix string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		SymbolMap: map[string]string{},
		Suffix:    suffix,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol + f.Suffix
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) fetchChart(symbol, rng string) ([]model.PriceBar, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=%s",
		url.PathEscape(f.yahooSymbol(symbol)), rng)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	type stamped struct {
		ts  int64
		bar model.PriceBar
	}
	rows := make([]stamped, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		b := model.PriceBar{Open: o, High: h, Low: l, Close: c, Volume: int64(toFloat(quote.Volume[i]))}
		if b.Open == 0 {
			b.Open = b.Close
		}
		if b.High == 0 {
			b.High = b.Close
		}
		if b.Low == 0 {
			b.Low = b.Close
		}
		rows = append(rows, stamped{ts: ts, bar: b})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ts < rows[j].ts })
	bars := make([]model.PriceBar, len(rows))
	for i, r := range rows {
		bars[i] = r.bar
	}
	return bars, nil
}

// FetchBar returns the most recent daily bar.
func (f *YahooFetcher) FetchBar(symbol string) (model.PriceBar, error) {
	bars, err := f.fetchChart(symbol, "5d")
	if err != nil {
		return model.PriceBar{}, err
	}
	if len(bars) == 0 {
		return model.PriceBar{}, fmt.Errorf("yahoo: no bars for %s", symbol)
	}
	return bars[len(bars)-1], nil
}

// FetchHistory returns the closes of the most recent `days` daily bars,
// oldest first.
func (f *YahooFetcher) FetchHistory(symbol string, days int) ([]float64, error) {
	rng := "3mo"
	if days > 60 {
		rng = "6mo"
	}
	if days > 120 {
		rng = "1y"
	}
	bars, err := f.fetchChart(symbol, rng)
	if err != nil {
		return nil, err
	}
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes, nil
}
