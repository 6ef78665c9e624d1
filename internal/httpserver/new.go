package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	agentHTTP "diary-agent/internal/agent/delivery/http"
	imageHTTP "diary-agent/internal/image/delivery/http"
	knowledgeHTTP "diary-agent/internal/knowledge/delivery/http"
	"diary-agent/internal/middleware"
	reportHTTP "diary-agent/internal/report/delivery/http"
	summarizeHTTP "diary-agent/internal/summarize/delivery/http"
	"diary-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	agentHandler     agentHTTP.Handler
	knowledgeHandler knowledgeHTTP.Handler
	imageHandler     imageHTTP.Handler
	reportHandler    reportHTTP.Handler
	summarizeHandler summarizeHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	AgentHandler     agentHTTP.Handler
	KnowledgeHandler knowledgeHTTP.Handler
	ImageHandler     imageHTTP.Handler
	ReportHandler    reportHTTP.Handler
	SummarizeHandler summarizeHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		agentHandler:     cfg.AgentHandler,
		knowledgeHandler: cfg.KnowledgeHandler,
		imageHandler:     cfg.ImageHandler,
		reportHandler:    cfg.ReportHandler,
		summarizeHandler: cfg.SummarizeHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.agentHandler == nil {
		return errors.New("agent handler is required")
	}
	return nil
}
