package seed

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/prognoshealth/seclookup/lookup"
)

// PadCIK renders a numeric cik the way EDGAR displays it, zero padded to ten
// digits.
func PadCIK(cik int64) string {
	return fmt.Sprintf("%010d", cik)
}

// ParseTickers converts the SEC company_tickers.json export into companies.
// The export is an object of entries like
//
//	{"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."}}
//
// Companies listing several tickers appear once per ticker; only the first
// entry for a cik is kept.
func ParseTickers(data []byte) ([]lookup.Company, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("company tickers is not valid json")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("company tickers must be a json object")
	}

	var (
		companies []lookup.Company
		parseErr  error
	)

	seen := make(map[string]bool)

	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			parseErr = errors.Errorf("entry %s is not an object", key.String())
			return false
		}

		n := value.Get("cik_str").Int()
		if n <= 0 {
			parseErr = errors.Errorf("entry %s has no valid cik_str", key.String())
			return false
		}

		title := strings.TrimSpace(value.Get("title").String())
		if title == "" {
			parseErr = errors.Errorf("entry %s has no title", key.String())
			return false
		}

		cik := PadCIK(n)
		if seen[cik] {
			return true
		}
		seen[cik] = true

		companies = append(companies, lookup.Company{
			CIK:    cik,
			Name:   title,
			Ticker: value.Get("ticker").String(),
		})

		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}

	return companies, nil
}
