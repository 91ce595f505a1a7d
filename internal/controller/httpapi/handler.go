package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"github.com/Freeeeeet/tutoria_notifier/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Коды ошибок в теле ответа, как у callable-функций Firebase
const (
	statusUnauthenticated  = "unauthenticated"
	statusPermissionDenied = "permission-denied"
	statusInvalidArgument  = "invalid-argument"
	statusInternal         = "internal"
)

// ManualSender ручная отправка уведомлений
type ManualSender interface {
	Send(ctx context.Context, callerID string, req service.ManualRequest) error
}

type sendRequest struct {
	RecipientID string            `json:"recipientId"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Payload     map[string]string `json:"payload"`
}

type handler struct {
	manual ManualSender
	logger *zap.Logger
}

// sendNotification POST /api/v1/notifications/send
func (h *handler) sendNotification(c *gin.Context) {
	// Тело проверяется после прав вызывающего, поэтому ошибку разбора не возвращаем сразу
	var body sendRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Debug("Malformed manual notification body", zap.Error(err))
		body = sendRequest{}
	}

	err := h.manual.Send(c.Request.Context(), GetUserID(c), service.ManualRequest{
		RecipientID: body.RecipientID,
		Title:       body.Title,
		Body:        body.Body,
		Payload:     model.Payload(body.Payload),
	})

	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, service.ErrUnauthenticated):
		abortWithError(c, http.StatusUnauthorized, statusUnauthenticated, "authentication required")
	case errors.Is(err, service.ErrPermissionDenied):
		abortWithError(c, http.StatusForbidden, statusPermissionDenied, "admin role required")
	case errors.Is(err, service.ErrInvalidArgument):
		abortWithError(c, http.StatusBadRequest, statusInvalidArgument, err.Error())
	default:
		h.logger.Error("Manual notification failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, statusInternal, "internal error")
	}
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "notifier"})
}

func abortWithError(c *gin.Context, code int, status, message string) {
	c.AbortWithStatusJSON(code, gin.H{
		"error": gin.H{
			"status":  status,
			"message": message,
		},
	})
}
