package factory

import (
	"fmt"

	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/config"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/search"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/searxng"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/tavily"
)

// NewSearcher 根据配置创建检索实例。Provider 为空时返回 nil，表示不使用实时证据
func NewSearcher(cfg *config.Config) (search.Searcher, error) {
	switch cfg.Search.Provider {
	case "":
		return nil, nil

	case "tavily":
		if cfg.Search.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(cfg.Search.Tavily.APIKey), nil

	case "searxng":
		if cfg.Search.SearXNG.BaseURL == "" {
			return nil, fmt.Errorf("searxng base url is missing")
		}
		return searxng.NewClient(cfg.Search.SearXNG.BaseURL, cfg.Search.SearXNG.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", cfg.Search.Provider)
	}
}
