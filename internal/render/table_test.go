package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-rates/internal"
	"service-rates/internal/render"
)

func strPtr(s string) *string { return &s }

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func TestTable_FullRecords(t *testing.T) {
	records := []internal.RateRecord{
		{Code: internal.USD, CardBuy: strPtr("27.10"), CardSell: strPtr("27.50"), OfficialRate: decPtr(27.3)},
		{Code: internal.EUR, CardBuy: strPtr("32.40"), CardSell: strPtr("33.10"), OfficialRate: decPtr(32.7)},
	}

	var buf bytes.Buffer
	render.Table(&buf, records)
	out := buf.String()

	for _, header := range []string{"Валюта", "Покупка (карточный)", "Продажа (карточный)", "Покупка (НБУ)", "Продажа (НБУ)"} {
		assert.Contains(t, out, header)
	}

	usdLine, eurLine := -1, -1
	for i, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "USD") {
			usdLine = i
			assert.Contains(t, line, "27.10")
			assert.Contains(t, line, "27.50")
			// official rate fills both НБУ columns
			assert.Equal(t, 2, strings.Count(line, "27.3"))
		}
		if strings.Contains(line, "EUR") {
			eurLine = i
		}
	}
	require.NotEqual(t, -1, usdLine)
	require.NotEqual(t, -1, eurLine)
	assert.Less(t, usdLine, eurLine)
	assert.NotContains(t, out, render.FailureMessage)
}

func TestTable_PlaceholdersForMissingFields(t *testing.T) {
	records := []internal.RateRecord{
		{Code: internal.USD},
		{Code: internal.EUR, OfficialRate: decPtr(32.7)},
	}

	var buf bytes.Buffer
	render.Table(&buf, records)
	out := buf.String()

	assert.Contains(t, out, "USD")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "32.7")
	assert.NotContains(t, out, render.FailureMessage)
}

func TestTable_EmptyRecords(t *testing.T) {
	var buf bytes.Buffer
	render.Table(&buf, nil)

	assert.Equal(t, render.FailureMessage+"\n", buf.String())
}
