package conf

type Bootstrap struct {
	Server *Server
	Auth   *Auth
	Pulse  *Pulse
}

// Auth 为空或 JwtKey 为空时 /v1/query 不做鉴权
type Auth struct {
	JwtKey string
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

// Pulse 实时查询引擎配置，为空时只提供解析接口
type Pulse struct {
	Llm         *LLM         `json:"llm"`
	Search      *Search      `json:"search"`
	Log         *Log         `json:"log"`
	Concurrency *Concurrency `json:"concurrency"`
	Report      *Report      `json:"report"`
}

type LLM struct {
	BaseUrl    string `json:"base_url"`
	ApiKey     string `json:"api_key"`
	Model      string `json:"model"`
	MaxRetries int32  `json:"max_retries"`
}

type Search struct {
	Provider   string   `json:"provider"`
	MaxResults int32    `json:"max_results"`
	Tavily     *Tavily  `json:"tavily"`
	Searxng    *SearXNG `json:"searxng"`
}

type Tavily struct {
	ApiKey string `json:"api_key"`
}

type SearXNG struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps   int32 `json:"qps"`
	Rpm   int32 `json:"rpm"`
	Fetch int32 `json:"fetch"`
}

type Report struct {
	Format string `json:"format"`
	Window int32  `json:"window"`
}
