package internal

import (
	"github.com/shopspring/decimal"

	"service-rates/internal/clients/nbu"
	"service-rates/internal/clients/privatbank"
)

// RateRecord carries the merged quotes for one tracked currency. A nil
// field means the source had nothing for it; the placeholder text is
// substituted at the rendering boundary, not here.
type RateRecord struct {
	Code         CurrencyCode
	CardBuy      *string
	CardSell     *string
	OfficialRate *decimal.Decimal
}

// MergeRates combines the card feed and the official feed into one record
// per tracked currency, in Tracked order. Either input may be empty or
// nil; entries for untracked currencies are skipped. The result always
// has exactly len(Tracked) records.
func MergeRates(card []privatbank.Rate, official []nbu.Rate) []RateRecord {
	byCode := make(map[CurrencyCode]*RateRecord, len(Tracked))
	records := make([]RateRecord, len(Tracked))
	for i, code := range Tracked {
		records[i] = RateRecord{Code: code}
		byCode[code] = &records[i]
	}

	for _, r := range card {
		ccy, err := NewCurrencyCode(r.Ccy)
		if err != nil {
			continue
		}
		if buy := r.Buy; buy != "" {
			byCode[ccy].CardBuy = &buy
		}
		if sale := r.Sale; sale != "" {
			byCode[ccy].CardSell = &sale
		}
	}

	for _, r := range official {
		ccy, err := NewCurrencyCode(r.Cc)
		if err != nil {
			continue
		}
		if rate := r.Rate; !rate.IsZero() {
			byCode[ccy].OfficialRate = &rate
		}
	}

	return records
}
