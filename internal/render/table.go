// Package render prints merged rate records as a console table.
package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"service-rates/internal"
)

const placeholder = "N/A"

// FailureMessage is printed instead of a table when there is nothing
// to show.
const FailureMessage = "Ошибка при запросе курса валют"

var headers = []string{
	"Валюта",
	"Покупка (карточный)",
	"Продажа (карточный)",
	"Покупка (НБУ)",
	"Продажа (НБУ)",
}

// Table writes one row per record, in record order. The official rate is
// a single reference value, so it fills both the НБУ buy and sell
// columns. With no records it writes FailureMessage instead.
func Table(w io.Writer, records []internal.RateRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, FailureMessage)
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false) // keep the fixed localized headers as-is
	table.SetHeader(headers)
	for _, r := range records {
		official := placeholder
		if r.OfficialRate != nil {
			official = r.OfficialRate.String()
		}
		table.Append([]string{
			r.Code.String(),
			orPlaceholder(r.CardBuy),
			orPlaceholder(r.CardSell),
			official,
			official,
		})
	}
	table.Render()
}

func orPlaceholder(s *string) string {
	if s == nil {
		return placeholder
	}
	return *s
}
