package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	ratessvc "service-rates/internal/service/rates"
)

type Config struct {
	Policy   ratessvc.Policy
	Timeout  time.Duration
	LogLevel string
}

func LoadConfig() (Config, error) {
	if err := godotenv.Overload(); err != nil {
		log.Println(errors.New("Error loading .env file"))
	}

	cfg := Config{
		Policy:   ratessvc.PolicyLenient,
		Timeout:  10 * time.Second,
		LogLevel: "info",
	}

	if p := strings.TrimSpace(os.Getenv("RATES_POLICY")); p != "" {
		policy, err := ratessvc.ParsePolicy(p)
		if err != nil {
			return Config{}, fmt.Errorf("RATES_POLICY: %w", err)
		}
		cfg.Policy = policy
	}

	if t := strings.TrimSpace(os.Getenv("RATES_TIMEOUT")); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return Config{}, fmt.Errorf("RATES_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("RATES_TIMEOUT must be positive, got %s", d)
		}
		cfg.Timeout = d
	}

	if lvl := strings.TrimSpace(os.Getenv("LOG_LEVEL")); lvl != "" {
		cfg.LogLevel = lvl
	}

	return cfg, nil
}
