// Package server exposes the conversation agent over HTTP.
package server

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/semsarlabs/semsar/agent/agents/orchestrator"
	contractx "github.com/semsarlabs/semsar/agent/contract"
)

// Fixed host-level utterances, independent of the conversation core.
const (
	welcomeMessage = "اهلا بيك انا مساعدك العقاري. تحب اساعدك ازاي؟"
	apologyMessage = "عذراً، حصلت مشكلة وأنا برد عليك. ممكن تبعت رسالتك تاني؟"
	emptyMessage   = "عذراً، لم أفهم رسالتك. هل يمكنك إعادة صياغتها؟"
)

var dialects = []string{"egyptian", "khaliji", "levantine", "msa"}

const defaultDialect = "egyptian"

// ChatAgent is the slice of the orchestrator the server needs.
type ChatAgent interface {
	HandleMessage(ctx context.Context, sessionID string, text string) (orchestrator.Result, error)
}

type Config struct {
	Addr    string `envconfig:"ADDR" split_words:"true" default:":5000"`
	GinMode string `envconfig:"GIN_MODE" split_words:"true" default:"release"`
}

type Server struct {
	agent ChatAgent
	leads contractx.LeadPublisher
	cfg   Config
}

// New builds the HTTP server. leads may be nil; closing-phase handoff is
// then skipped.
func New(agent ChatAgent, leads contractx.LeadPublisher, cfg Config) *Server {
	return &Server{agent: agent, leads: leads, cfg: cfg}
}

// Router assembles the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(s.cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", s.health)

	api := router.Group("/api")
	{
		api.POST("/chat", s.chat)
		api.GET("/welcome", s.welcome)
		api.GET("/dialects", s.listDialects)
	}

	return router
}

// Run blocks serving HTTP on the configured address.
func (s *Server) Run() error {
	return s.Router().Run(s.cfg.Addr)
}
