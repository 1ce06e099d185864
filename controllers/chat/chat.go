package chatControllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/velora-labs/storefront-api/assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []Message `json:"messages" binding:"required,min=1"`
}

// POST /chat
//
// The widget sends its whole history but only the last message's content
// is forwarded as the prompt. Any failure on the model side collapses to
// the fixed fallback message; nothing technical ever reaches the user.
func Chat(orc *assistant.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		prompt := req.Messages[len(req.Messages)-1].Content

		text, err := orc.Reply(c.Request.Context(), prompt)
		if err != nil || strings.TrimSpace(text) == "" {
			if err != nil {
				log.Printf("❌ Chat generation failed: %v", err)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"text": assistant.FallbackMessage})
			return
		}

		c.JSON(http.StatusOK, gin.H{"text": text})
	}
}
