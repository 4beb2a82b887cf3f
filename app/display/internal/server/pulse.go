package server

import (
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/signal_pulse/app/display/internal/conf"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/config"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/engine"
	spLogger "github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/logger"
)

// NewPulseEngine 初始化实时查询引擎，未配置 pulse 时返回 nil
func NewPulseEngine(c *conf.Pulse, logger log.Logger) (*engine.Engine, func(), error) {
	if c == nil || c.Llm == nil {
		log.NewHelper(logger).Info("pulse engine not configured, /v1/query disabled")
		return nil, func() {}, nil
	}

	cfg := toConfig(c)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	// 初始化日志
	if err := spLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.NewHelper(logger).Errorf("Failed to init engine logger: %v", err)
		_ = spLogger.InitLogger("info", "") // 降级处理
	}

	// 初始化核心引擎
	eng, err := engine.NewEngine(cfg)
	if err != nil {
		log.NewHelper(logger).Errorf("Failed to init engine: %v", err)
		return nil, nil, err
	}

	cleanup := func() {
		log.NewHelper(logger).Info("Cleaning up pulse engine")
	}
	return eng, cleanup, nil
}

// toConfig 将 internal/conf.Pulse 转换为 pkg/config.Config
func toConfig(c *conf.Pulse) *config.Config {
	cfg := &config.Config{}
	if c.Llm != nil {
		cfg.LLM = config.LLMConfig{
			BaseURL:    c.Llm.BaseUrl,
			APIKey:     c.Llm.ApiKey,
			Model:      c.Llm.Model,
			MaxRetries: int(c.Llm.MaxRetries),
		}
	}
	if c.Search != nil {
		cfg.Search.Provider = c.Search.Provider
		cfg.Search.MaxResults = int(c.Search.MaxResults)
		if c.Search.Tavily != nil {
			cfg.Search.Tavily.APIKey = c.Search.Tavily.ApiKey
		}
		if c.Search.Searxng != nil {
			cfg.Search.SearXNG = config.SearXNGConfig{
				BaseURL: c.Search.Searxng.BaseUrl,
				Timeout: int(c.Search.Searxng.Timeout),
			}
		}
	}
	if c.Log != nil {
		cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
	}
	if c.Concurrency != nil {
		cfg.Concurrency = config.ConcurrencyConfig{
			QPS:   int(c.Concurrency.Qps),
			RPM:   int(c.Concurrency.Rpm),
			Fetch: int(c.Concurrency.Fetch),
		}
	}
	if c.Report != nil {
		cfg.Report = config.ReportConfig{Format: c.Report.Format, Window: int(c.Report.Window)}
	}
	cfg.Defaults()
	return cfg
}
