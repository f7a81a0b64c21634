package config

import (
	"fmt"
	"net/url"
)

// validate checks invariants the defaults cannot repair.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidValue, cfg.Server.Port)
	}
	if err := validURL("ml_classifier.base_url", cfg.Classifier.BaseURL); err != nil {
		return err
	}
	if err := validURL("github.service_url", cfg.GitHub.ServiceURL); err != nil {
		return err
	}
	if cfg.LLM.BaseURL != "" {
		if err := validURL("llm.base_url", cfg.LLM.BaseURL); err != nil {
			return err
		}
	}
	if p := cfg.Orchestration.ABTest.DefaultTrafficPercent; p < 0 || p > 100 {
		return fmt.Errorf("%w: ab_test.default_traffic_percent %d out of range", ErrInvalidValue, p)
	}
	return nil
}

func validURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %s %q is not an absolute URL", ErrInvalidValue, field, raw)
	}
	return nil
}
