// Package handler exposes the card composer and the counter store over HTTP.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naka-gawa/github-profile-card/internal/usecase"
)

// CardComposer renders profile cards.
type CardComposer interface {
	Compose(ctx context.Context, handle string) usecase.Result
}

type CardHandler struct {
	composer CardComposer
}

func NewCardHandler(composer CardComposer) *CardHandler {
	return &CardHandler{composer: composer}
}

// Generate writes the SVG card for ?username=. Error documents are served with
// status 200 as well, so an <img> tag always has something to draw.
func (h *CardHandler) Generate(c *gin.Context) {
	result := h.composer.Compose(c.Request.Context(), c.Query("username"))
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/svg+xml", result.SVG)
}
