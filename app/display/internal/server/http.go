package server

import (
	"embed"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/auth/jwt"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/middleware/selector"
	"github.com/go-kratos/kratos/v2/transport/http"
	jwtv5 "github.com/golang-jwt/jwt/v5"

	pb "github.com/iWorld-y/signal_pulse/app/display/api/pulse/v1"
	"github.com/iWorld-y/signal_pulse/app/display/internal/conf"
	"github.com/iWorld-y/signal_pulse/app/display/internal/service"
)

//go:embed assets/*
var assets embed.FS

func NewHTTPServer(c *conf.Server, auth *conf.Auth, s *service.PulseService, logger log.Logger) *http.Server {
	mws := []middleware.Middleware{
		recovery.Recovery(),
		logging.Server(logger),
	}
	// 只有实时查询会调用模型，需要鉴权
	if auth != nil && auth.JwtKey != "" {
		key := []byte(auth.JwtKey)
		mws = append(mws, selector.Server(
			jwt.Server(func(token *jwtv5.Token) (interface{}, error) {
				return key, nil
			}, jwt.WithSigningMethod(jwtv5.SigningMethodHS256)),
		).Path(pb.OperationPulseQuery).Build())
	}

	var opts = []http.ServerOption{
		http.Middleware(mws...),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			}
		}
	}

	srv := http.NewServer(opts...)
	pb.RegisterPulseHTTPServer(srv, s)

	// 预览页
	srv.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != "/" {
			nethttp.NotFound(w, r)
			return
		}
		content, _ := assets.ReadFile("assets/index.html")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(content)
	})

	return srv
}
