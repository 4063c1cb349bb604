package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-advisor/config"
	"stock-advisor/pkg/logger"
)

func newMarketTestRepo(t *testing.T, handler http.HandlerFunc) MarketDataRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.YahooFinance.BaseURL = server.URL
	cfg.YahooFinance.Timeout = 2 * time.Second
	cfg.YahooFinance.MaxRequestPerMinute = 600

	return NewYahooFinanceRepository(cfg, logger.NewNop())
}

func chartPayload(symbol string, timestamps []int64, closes []float64) string {
	ts := ""
	cl := ""
	hi := ""
	lo := ""
	vol := ""
	for i := range timestamps {
		if i > 0 {
			ts += ","
			cl += ","
			hi += ","
			lo += ","
			vol += ","
		}
		ts += fmt.Sprintf("%d", timestamps[i])
		cl += fmt.Sprintf("%v", closes[i])
		hi += fmt.Sprintf("%v", closes[i]+1)
		lo += fmt.Sprintf("%v", closes[i]-1)
		vol += "1000"
	}
	return fmt.Sprintf(`{"chart":{"result":[{
		"meta":{"symbol":%q,"shortName":"Test Corp","regularMarketPrice":%v,"chartPreviousClose":%v},
		"timestamp":[%s],
		"indicators":{"quote":[{"close":[%s],"high":[%s],"low":[%s],"volume":[%s]}]}
	}],"error":null}}`, symbol, closes[len(closes)-1], closes[0], ts, cl, hi, lo, vol)
}

func TestYahooFinanceRepository_GetQuote(t *testing.T) {
	repo := newMarketTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/AAPL", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chartPayload("AAPL", []int64{1700000000, 1700086400}, []float64{100, 105}))
	})

	quote, err := repo.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", quote.Symbol)
	assert.Equal(t, "Test Corp", quote.Name)
	assert.Equal(t, 105.0, quote.Price)
	assert.Equal(t, 5.0, quote.Change)
	assert.Equal(t, 5.0, quote.PercentChange)
	assert.Equal(t, int64(1000), quote.Volume)
}

func TestYahooFinanceRepository_GetQuote_SkipsMissingBars(t *testing.T) {
	// the middle bar is missing (zero close); volume, high and low must
	// come from the last real bar, not the last filtered index
	repo := newMarketTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"chart":{"result":[{
			"meta":{"symbol":"AAPL","shortName":"Test Corp","regularMarketPrice":106,"chartPreviousClose":100},
			"timestamp":[1700000000,1700086400,1700172800],
			"indicators":{"quote":[{
				"close":[100,0,106],
				"high":[101,0,107],
				"low":[99,0,105],
				"volume":[111,222,333]
			}]}
		}],"error":null}}`)
	})

	quote, err := repo.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, 106.0, quote.Price)
	assert.Equal(t, int64(333), quote.Volume)
	assert.Equal(t, 107.0, quote.High)
	assert.Equal(t, 105.0, quote.Low)
}

func TestYahooFinanceRepository_GetQuote_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-OK status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "api error payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"chart":{"result":[],"error":{"code":"Not Found"}}}`)
			},
		},
		{
			name: "empty result",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"chart":{"result":[],"error":null}}`)
			},
		},
		{
			name: "all closes missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"chart":{"result":[{"meta":{"symbol":"ZZZZ"},"timestamp":[1700000000],"indicators":{"quote":[{"close":[0]}]}}],"error":null}}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMarketTestRepo(t, tt.handler)
			_, err := repo.GetQuote(context.Background(), "ZZZZ")
			assert.Error(t, err)
		})
	}
}

func TestYahooFinanceRepository_GetHistory(t *testing.T) {
	// 2023-11-14T22:13:20Z and the following day
	repo := newMarketTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chartPayload("AAPL", []int64{1700000000, 1700086400}, []float64{100, 106}))
	})

	history, err := repo.GetHistory(context.Background(), "AAPL", 30)
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 106}, history.Prices)
	assert.Equal(t, []string{"11/14", "11/15"}, history.Dates)
}
