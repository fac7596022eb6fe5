package internal

import (
	"bytes"
	"fmt"
	"strings"
)

type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
)

// Tracked lists the currencies the program reports, in output order.
var Tracked = []CurrencyCode{USD, EUR}

var trackedSet = map[CurrencyCode]struct{}{
	USD: {}, EUR: {},
}

func NewCurrencyCode(s string) (CurrencyCode, error) {
	ccy := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if !ccy.IsTracked() {
		return "", fmt.Errorf("untracked currency %q", s)
	}
	return ccy, nil
}

func (c CurrencyCode) IsTracked() bool {
	_, ok := trackedSet[c]
	return ok
}

func (c CurrencyCode) String() string { return string(c) }

func (c CurrencyCode) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.String())), nil
}

func (c *CurrencyCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := strings.Trim(string(b), "\"")
	ccy, err := NewCurrencyCode(s)
	if err != nil {
		return err
	}
	*c = ccy
	return nil
}
