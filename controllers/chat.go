// controllers/chat.go
package controllers

import (
	"net/http"

	"marquise-backend/services"
	"marquise-backend/utils"

	"github.com/gin-gonic/gin"
)

type ChatInput struct {
	Message string              `json:"message" binding:"required"`
	History []services.ChatTurn `json:"history"`
}

type ChatController struct {
	assistant *services.Assistant
}

func NewChatController(assistant *services.Assistant) *ChatController {
	return &ChatController{assistant: assistant}
}

func (ctl *ChatController) Chat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reply, err := ctl.assistant.Chat(c.Request.Context(), input.Message, input.History)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Assistant is unavailable right now")
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
