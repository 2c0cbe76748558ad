package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naka-gawa/github-profile-card/internal/domain"
)

// Recognized values of the action query parameter.
const (
	ActionIncrementGenerations = "increment_generations"
	ActionIncrementVisitors    = "increment_visitors"
	ActionGetStats             = "get_stats"
)

// CounterStore is the usage counter backend.
type CounterStore interface {
	IncrementGenerations() (*domain.GenerationResult, error)
	IncrementVisitors() (*domain.VisitorResult, error)
	GetStats() *domain.Stats
	Debug() (*domain.DebugInfo, error)
}

type generationResponse struct {
	*domain.GenerationResult
	Debug *domain.DebugInfo `json:"debug,omitempty"`
}

type visitorResponse struct {
	*domain.VisitorResult
	Debug *domain.DebugInfo `json:"debug,omitempty"`
}

type statsResponse struct {
	*domain.Stats
	Debug *domain.DebugInfo `json:"debug,omitempty"`
}

type StatsHandler struct {
	store  CounterStore
	logger *log.Logger
}

func NewStatsHandler(store CounterStore, logger *log.Logger) *StatsHandler {
	return &StatsHandler{store: store, logger: logger}
}

// Handle runs ?action= against the store. Unknown or missing actions read the stats.
// With ?debug present, the response also describes the backing file.
func (h *StatsHandler) Handle(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	c.Header("Pragma", "no-cache")

	_, debug := c.GetQuery("debug")

	switch c.Query("action") {
	case ActionIncrementGenerations:
		res, err := h.store.IncrementGenerations()
		if err != nil {
			h.storageError(c, err)
			return
		}
		c.JSON(http.StatusOK, generationResponse{GenerationResult: res, Debug: h.debug(debug)})
	case ActionIncrementVisitors:
		res, err := h.store.IncrementVisitors()
		if err != nil {
			h.storageError(c, err)
			return
		}
		c.JSON(http.StatusOK, visitorResponse{VisitorResult: res, Debug: h.debug(debug)})
	default:
		c.JSON(http.StatusOK, statsResponse{Stats: h.store.GetStats(), Debug: h.debug(debug)})
	}
}

func (h *StatsHandler) storageError(c *gin.Context, err error) {
	h.logger.Printf("Handler: %s failed: %v\n", c.Query("action"), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to write stats file"})
}

func (h *StatsHandler) debug(enabled bool) *domain.DebugInfo {
	if !enabled {
		return nil
	}
	info, err := h.store.Debug()
	if err != nil {
		h.logger.Printf("Handler: debug info unavailable: %v\n", err)
		return nil
	}
	return info
}
