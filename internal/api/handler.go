// Package api exposes the guidance, assistant and dashboard operations over
// HTTP/JSON.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Skufu/healthguide/internal/assistant"
	"github.com/Skufu/healthguide/internal/dashboard"
	"github.com/Skufu/healthguide/internal/guidance"
)

const logSnippetRunes = 80

// SymptomRequest is the body of POST /api/analyze-symptom.
type SymptomRequest struct {
	Symptom        string `json:"symptom" binding:"required"`
	Duration       string `json:"duration"`
	Severity       string `json:"severity"`
	AdditionalInfo string `json:"additional_info"`
	Age            *int   `json:"age" binding:"omitempty,min=0,max=130"`
	Gender         string `json:"gender"`
	MedicalHistory string `json:"medical_history"`
}

// ChatRequest is the body of POST /api/ai-chat.
type ChatRequest struct {
	Message string         `json:"message" binding:"required"`
	UserID  string         `json:"user_id"`
	Context map[string]any `json:"context"`
}

// VoiceRequest is the body of POST /api/voice-input.
type VoiceRequest struct {
	AudioText  string   `json:"audio_text" binding:"required"`
	Confidence *float64 `json:"confidence" binding:"omitempty,min=0,max=1"`
	Language   string   `json:"language"`
	UserID     string   `json:"user_id"`
}

// SearchRequest is the body of POST /api/real-time-search.
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// PatternRequest is the body of POST /api/pattern-analysis.
type PatternRequest struct {
	Symptoms  []string `json:"symptoms" binding:"required"`
	Timeframe string   `json:"timeframe"`
}

// Handler serves the JSON API.
type Handler struct {
	serviceName string
	assembler   *guidance.Assembler
	stubs       *assistant.Stubs
	dashboards  dashboard.Source
	logger      *zap.Logger
}

// NewHandler wires the handler dependencies.
func NewHandler(serviceName string, assembler *guidance.Assembler, stubs *assistant.Stubs, dashboards dashboard.Source, logger *zap.Logger) *Handler {
	useJSONFieldNames()
	return &Handler{
		serviceName: serviceName,
		assembler:   assembler,
		stubs:       stubs,
		dashboards:  dashboards,
		logger:      logger,
	}
}

// Register mounts the API routes on router.
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/", h.Root)
	router.GET("/api/health", h.Health)
	router.POST("/api/analyze-symptom", h.AnalyzeSymptom)
	router.POST("/api/ai-chat", h.Chat)
	router.GET("/api/health-dashboard/:user_id", h.Dashboard)
	router.POST("/api/voice-input", h.VoiceInput)
	router.POST("/api/real-time-search", h.RealTimeSearch)
	router.POST("/api/pattern-analysis", h.PatternAnalysis)
}

// GET /
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.serviceName + " API - Enhanced with AI Capabilities"})
}

// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"service":     h.serviceName,
		"ai_enhanced": true,
	})
}

// POST /api/analyze-symptom
func (h *Handler) AnalyzeSymptom(c *gin.Context) {
	var req SymptomRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.logger.Info("analyzing symptom",
		zap.String("request_id", RequestIDFrom(c)),
		zap.String("symptom", snippet(req.Symptom)),
	)

	resp, err := h.assembler.Analyze(guidance.Query{
		Symptom:        req.Symptom,
		Duration:       req.Duration,
		Severity:       req.Severity,
		AdditionalInfo: req.AdditionalInfo,
		Age:            req.Age,
		Gender:         req.Gender,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		h.fail(c, "AI analysis error", err)
		return
	}

	h.logger.Info("symptom analyzed",
		zap.String("request_id", RequestIDFrom(c)),
		zap.Int("causes", len(resp.PossibleCauses)),
		zap.String("immediate_risk", resp.RiskAssessment.ImmediateRisk),
	)
	c.JSON(http.StatusOK, resp)
}

// POST /api/ai-chat
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if !h.bindJSON(c, &req) {
		return
	}

	reply := assistant.Reply(req.Message)
	h.logger.Info("chat reply",
		zap.String("request_id", RequestIDFrom(c)),
		zap.String("message", snippet(req.Message)),
		zap.String("branch", reply.Branch),
	)
	c.JSON(http.StatusOK, reply)
}

// GET /api/health-dashboard/:user_id
func (h *Handler) Dashboard(c *gin.Context) {
	userID := c.Param("user_id")
	h.logger.Info("building health dashboard", zap.String("user_id", userID))

	d, err := h.dashboards.Dashboard(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "Dashboard error", err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// POST /api/voice-input
func (h *Handler) VoiceInput(c *gin.Context) {
	var req VoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	res, err := assistant.ProcessVoice(assistant.VoiceInput{
		AudioText:  req.AudioText,
		Confidence: req.Confidence,
		Language:   req.Language,
		UserID:     req.UserID,
	})
	if err != nil {
		h.fail(c, "Voice processing error", err)
		return
	}

	h.logger.Info("voice input processed",
		zap.String("request_id", RequestIDFrom(c)),
		zap.Strings("detected", res.DetectedSymptoms),
	)
	c.JSON(http.StatusOK, res)
}

// POST /api/real-time-search
func (h *Handler) RealTimeSearch(c *gin.Context) {
	var req SearchRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.logger.Info("real-time search", zap.String("query", snippet(req.Query)))
	res, err := h.stubs.Search(req.Query)
	if err != nil {
		h.fail(c, "Search error", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/pattern-analysis
func (h *Handler) PatternAnalysis(c *gin.Context) {
	var req PatternRequest
	if !h.bindJSON(c, &req) {
		return
	}

	res := h.stubs.AnalyzePatterns(req.Symptoms, req.Timeframe)
	h.logger.Info("pattern analysis",
		zap.Int("symptoms", res.SymptomCount),
		zap.String("timeframe", res.Timeframe),
	)
	c.JSON(http.StatusOK, res)
}

func snippet(s string) string {
	if r := []rune(s); len(r) > logSnippetRunes {
		return string(r[:logSnippetRunes]) + "…"
	}
	return s
}
