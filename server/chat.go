package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	contractx "github.com/semsarlabs/semsar/agent/contract"
	statex "github.com/semsarlabs/semsar/agent/state"
)

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Phase     string `json:"phase,omitempty"`
}

func (s *Server) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusOK, chatResponse{
			Response:  emptyMessage,
			SessionID: sessionID,
		})
		return
	}

	result, err := s.agent.HandleMessage(c.Request.Context(), sessionID, message)
	if err != nil {
		// Turn-boundary policy: the conversation continues with a fixed
		// apology instead of surfacing the failure to the buyer.
		log.Error().Err(err).Str("session_id", sessionID).Msg("turn processing failed")
		c.JSON(http.StatusOK, chatResponse{
			Response:  apologyMessage,
			SessionID: sessionID,
		})
		return
	}

	if result.Phase == statex.PhaseClosing {
		s.publishLead(c, sessionID, result.Slots, result.Selected)
	}

	c.JSON(http.StatusOK, chatResponse{
		Response:  result.Reply,
		SessionID: sessionID,
		Phase:     result.Phase.String(),
	})
}

func (s *Server) publishLead(c *gin.Context, sessionID string, slots statex.Slots, selected []statex.Property) {
	if s.leads == nil {
		return
	}
	lead := contractx.Lead{
		SessionID: sessionID,
		Slots:     slots,
		Selected:  selected,
	}
	if err := s.leads.Publish(c.Request.Context(), lead); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("lead handoff failed")
	}
}

// welcome opens a fresh conversation: a new session id plus the fixed
// greeting.
func (s *Server) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, chatResponse{
		Response:  welcomeMessage,
		SessionID: uuid.NewString(),
	})
}

func (s *Server) listDialects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"dialects": dialects,
		"default":  defaultDialect,
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
