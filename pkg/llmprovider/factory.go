package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"zitta/config"
	"zitta/pkg/gemini"
	"zitta/pkg/log"
	"zitta/pkg/openaicompat"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Offline mode yields only the offline provider. Otherwise enabled providers are
// returned sorted by priority; ones that fail to initialize are skipped and logged.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if cfg.OfflineMode {
		return []Provider{NewOfflineProvider()}, nil
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string
	for _, p := range enabled {
		provider, err := createProvider(ctx, p)
		if err != nil {
			msg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, msg)
			l.Warnf(ctx, "%s: skipping %s", LogPrefixFactory, msg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoProvidersConfigured, strings.Join(initErrors, "; "))
	}

	return providers, nil
}

func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	switch cfg.Name {
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("API key is required")
		}
		timeout, _ := time.ParseDuration(cfg.Timeout)
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case ProviderQwen, ProviderDeepSeek:
		timeout, _ := time.ParseDuration(cfg.Timeout)
		client, err := openaicompat.New(openaicompat.Config{
			Preset:  presets[cfg.Name],
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewCompatAdapter(client), nil

	case ProviderOffline:
		return NewOfflineProvider(), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
