// Package exchangeinfo loads the symbol metadata (base/quote asset, trading
// status) that pricepath.Build needs to construct the triangular universe,
// either from a local JSON fixture or a live exchange fetch.
package exchangeinfo

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/valyala/fasthttp"

	"triarb/pkg/pricepath"
)

const liveURL = "https://fapi.binance.com/fapi/v1/exchangeInfo"

type fixtureSymbol struct {
	Symbol     string `json:"symbol"`
	BaseAsset  string `json:"baseAsset"`
	QuoteAsset string `json:"quoteAsset"`
	Status     string `json:"status"`
}

type fixtureDoc struct {
	Symbols []fixtureSymbol `json:"symbols"`
}

// LoadFixture reads exchange metadata from a local JSON file shaped like
// Binance's exchangeInfo response, grounded on the original implementation's
// load_exchange_info_fixture. Used for tests and offline runs.
func LoadFixture(path string) ([]pricepath.SymbolInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("exchangeinfo: read fixture %s: %w", path, err)
	}
	var doc fixtureDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("exchangeinfo: decode fixture %s: %w", path, err)
	}
	return toSymbolInfo(doc.Symbols), nil
}

// FetchLive retrieves current symbol metadata from the exchange over HTTPS,
// grounded on bn.FetchKlines's fasthttp request/response pooling pattern.
func FetchLive() ([]pricepath.SymbolInfo, error) {
	client := &fasthttp.Client{}
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(liveURL)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := client.Do(req, resp); err != nil {
		return nil, fmt.Errorf("exchangeinfo: fetch %s: %w", liveURL, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("exchangeinfo: fetch %s: status %d", liveURL, resp.StatusCode())
	}

	body := append([]byte(nil), resp.Body()...)
	symbols := gjson.GetBytes(body, "symbols")
	if !symbols.IsArray() {
		return nil, fmt.Errorf("exchangeinfo: unexpected response format from %s", liveURL)
	}

	var out []pricepath.SymbolInfo
	for _, s := range symbols.Array() {
		out = append(out, pricepath.SymbolInfo{
			Symbol:     s.Get("symbol").String(),
			BaseAsset:  s.Get("baseAsset").String(),
			QuoteAsset: s.Get("quoteAsset").String(),
			Status:     s.Get("status").String(),
		})
	}
	return out, nil
}

func toSymbolInfo(symbols []fixtureSymbol) []pricepath.SymbolInfo {
	out := make([]pricepath.SymbolInfo, len(symbols))
	for i, s := range symbols {
		out[i] = pricepath.SymbolInfo{
			Symbol:     s.Symbol,
			BaseAsset:  s.BaseAsset,
			QuoteAsset: s.QuoteAsset,
			Status:     s.Status,
		}
	}
	return out
}
