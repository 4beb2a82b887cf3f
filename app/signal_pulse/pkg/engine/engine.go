package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/go-shiori/go-readability"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/block"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/config"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/logger"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/report"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/search"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/search/factory"
)

// Format 模型输出格式
type Format string

const (
	FormatJSON   Format = "json"
	FormatMarkup Format = "markup"
)

// ParseFormat 解析输出格式，空串视为 json
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatMarkup:
		return FormatMarkup, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// ErrEmptyQuery 查询为空
var ErrEmptyQuery = errors.New("query is empty")

const (
	minContentLen = 500
	maxContentLen = 5000
)

// Engine 核心处理引擎
type Engine struct {
	cfg       *config.Config
	chatModel model.BaseChatModel
	searcher  search.Searcher
	limiter   *rate.Limiter
	fetch     func(url string) (string, error)
	backoff   time.Duration
	now       func() time.Time
}

// NewEngine 根据配置创建引擎实例
func NewEngine(cfg *config.Config) (*Engine, error) {
	ctx := context.Background()

	// 初始化 LLM
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}

	// 初始化搜索客户端
	searcher, err := factory.NewSearcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("搜索客户端初始化失败: %w", err)
	}

	return New(cfg, chatModel, searcher), nil
}

// New 使用现成的模型与检索实例组装引擎，searcher 可以为 nil
func New(cfg *config.Config, cm model.BaseChatModel, searcher search.Searcher) *Engine {
	c := *cfg
	c.Defaults()

	// RPM 为 0 时不限流
	limit := rate.Inf
	if c.Concurrency.RPM > 0 {
		limit = rate.Limit(float64(c.Concurrency.RPM) / 60.0)
	}

	return &Engine{
		cfg:       &c,
		chatModel: cm,
		searcher:  searcher,
		limiter:   rate.NewLimiter(limit, c.Concurrency.QPS),
		fetch:     fetchAndCleanContent,
		backoff:   2 * time.Second,
		now:       time.Now,
	}
}

// QueryOptions 查询选项
type QueryOptions struct {
	Query string
	// Format 为空时使用配置中的 report.format
	Format Format
}

// Result 一次查询的完整产出
type Result struct {
	ID       string          `json:"id"`
	Query    string          `json:"query"`
	Format   Format          `json:"format"`
	Attempts int             `json:"attempts"`
	Evidence []search.Result `json:"evidence"`
	Raw      string          `json:"raw"`
	Document report.Document `json:"document"`
	Blocks   []block.Block   `json:"-"`
}

// Query 检索实时证据、调用模型并解析输出
func (e *Engine) Query(ctx context.Context, opts QueryOptions) (*Result, error) {
	query := strings.TrimSpace(opts.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	format := opts.Format
	if format == "" {
		f, err := ParseFormat(e.cfg.Report.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}

	res := &Result{
		ID:     uuid.NewString(),
		Query:  query,
		Format: format,
	}
	log := logger.Log.WithFields(logrus.Fields{"run": res.ID, "format": format})
	log.Infof("开始处理查询: %s", query)

	// 1. 检索实时证据
	res.Evidence = e.gatherEvidence(ctx, log, query)
	log.Debugf("获得 %d 条证据", len(res.Evidence))

	// 2. 调用模型
	messages := buildMessages(format, query, res.Evidence, e.now())
	raw, attempts, err := e.generate(ctx, log, messages, format)
	if err != nil {
		return nil, err
	}
	res.Raw = raw
	res.Attempts = attempts

	// 3. 解析
	res.Document = report.Parse(raw)
	if format == FormatMarkup {
		res.Blocks = block.ClassifyLines(raw)
	} else {
		res.Blocks = res.Document.Blocks
		for _, issue := range res.Document.Issues {
			log.Warnf("报告解析问题: %s", issue)
		}
	}

	log.Infof("查询完成，尝试 %d 次，来源 %s", attempts, res.Document.Origin)
	return res, nil
}

// gatherEvidence 检索并补全正文，失败时返回空证据而不是中断查询
func (e *Engine) gatherEvidence(ctx context.Context, log *logrus.Entry, query string) []search.Result {
	if e.searcher == nil {
		return nil
	}

	now := e.now()
	req := &search.Request{
		Query:      query,
		Topic:      "news",
		MaxResults: e.cfg.Search.MaxResults,
		StartDate:  now.AddDate(0, 0, -e.cfg.Report.Window).Format(time.DateOnly),
		EndDate:    now.Format(time.DateOnly),
	}

	resp, err := e.searcher.Search(ctx, req)
	if err != nil {
		log.Errorf("检索失败: %v", err)
		return nil
	}

	results := resp.Results
	e.enrich(ctx, log, results)
	return results
}

// enrich 并发抓取摘要过短的条目的正文
func (e *Engine) enrich(ctx context.Context, log *logrus.Entry, results []search.Result) {
	if e.fetch == nil {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Concurrency.Fetch)
	for i := range results {
		if len(results[i].Content) >= minContentLen || results[i].URL == "" {
			continue
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			fetched, err := e.fetch(results[i].URL)
			if err != nil {
				log.Debugf("抓取正文失败 [%s]: %v", results[i].URL, err)
				return nil
			}
			if len(fetched) > len(results[i].Content) {
				results[i].Content = truncate(fetched, maxContentLen)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// generate 调用模型。429 按指数退避重试；json 格式下输出无法解析时重新请求
func (e *Engine) generate(ctx context.Context, log *logrus.Entry, messages []*schema.Message, format Format) (string, int, error) {
	maxRetries := e.cfg.LLM.MaxRetries
	var lastErr error
	var lastRaw string

	for i := 0; i <= maxRetries; i++ {
		if err := e.limiter.Wait(ctx); err != nil {
			return "", i, err
		}

		resp, err := e.chatModel.Generate(ctx, messages)
		if err != nil {
			if isRateLimited(err) && i < maxRetries {
				lastErr = err
				log.Warnf("模型限流，第 %d 次重试: %v", i+1, err)
				if err := sleep(ctx, e.backoff*time.Duration(1<<i)); err != nil {
					return "", i + 1, err
				}
				continue
			}
			return "", i + 1, fmt.Errorf("模型调用失败: %w", err)
		}

		lastRaw = resp.Content
		if format == FormatJSON && report.Parse(lastRaw).IsFallback() && i < maxRetries {
			log.Warnf("模型输出不是合法报告，第 %d 次重试", i+1)
			continue
		}
		return lastRaw, i + 1, nil
	}

	return lastRaw, maxRetries + 1, lastErr
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "too many requests")
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func fetchAndCleanContent(url string) (string, error) {
	article, err := readability.FromURL(url, 30*time.Second)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}
