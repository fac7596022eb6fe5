// Package rates runs the fetch-then-merge pipeline over both sources.
package rates

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"service-rates/internal"
	"service-rates/internal/clients/nbu"
	"service-rates/internal/clients/privatbank"
)

// Policy controls what a source failure does to the run.
type Policy string

const (
	// PolicyLenient keeps going: a failed source contributes nothing and
	// the affected fields fall back to the placeholder.
	PolicyLenient Policy = "lenient"
	// PolicyStrict treats any source failure as a failed run: Collect
	// returns no records at all.
	PolicyStrict Policy = "strict"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyLenient, PolicyStrict:
		return Policy(s), nil
	case "":
		return PolicyLenient, nil
	}
	return "", fmt.Errorf("unknown policy %q", s)
}

type CardRatesClient interface {
	Rates(ctx context.Context) ([]privatbank.Rate, error)
}

type OfficialRatesClient interface {
	Rates(ctx context.Context) ([]nbu.Rate, error)
}

type Service struct {
	card     CardRatesClient
	official OfficialRatesClient
	policy   Policy
	log      *logrus.Logger
}

func New(card CardRatesClient, official OfficialRatesClient, policy Policy, log *logrus.Logger) *Service {
	return &Service{card: card, official: official, policy: policy, log: log}
}

// Collect fetches both sources in order and merges them. Source failures
// never propagate as errors: they are logged, and depending on the policy
// either degrade that source to empty or empty the whole result.
func (s *Service) Collect(ctx context.Context) []internal.RateRecord {
	var failed bool

	card, err := s.card.Rates(ctx)
	if err != nil {
		s.log.Errorf("privatbank rates: %v", err)
		card, failed = nil, true
	}

	official, err := s.official.Rates(ctx)
	if err != nil {
		s.log.Errorf("nbu rates: %v", err)
		official, failed = nil, true
	}

	if failed && s.policy == PolicyStrict {
		return nil
	}
	return internal.MergeRates(card, official)
}
