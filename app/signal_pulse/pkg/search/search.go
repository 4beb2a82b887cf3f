package search

import (
	"context"
	"net/url"
	"strings"
)

// Searcher 定义通用的检索接口
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Request 通用检索请求
type Request struct {
	Query      string
	Topic      string // "news" or "general"
	MaxResults int
	StartDate  string // Format: YYYY-MM-DD
	EndDate    string // Format: YYYY-MM-DD
}

// Response 通用检索响应
type Response struct {
	Results []Result
}

// Result 单条检索结果
type Result struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content,omitempty"`
	Score         float64 `json:"score,omitempty"`
	PublishedDate string  `json:"published_date,omitempty"`
	// Source 来源名称，适配器拿不到时由 URL 推导
	Source string `json:"source,omitempty"`
}

// SourceName 返回来源名称，优先使用 Source，否则取 URL 主机名
func (r Result) SourceName() string {
	if s := strings.TrimSpace(r.Source); s != "" {
		return s
	}
	u, err := url.Parse(r.URL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
