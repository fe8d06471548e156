package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Message string `json:"message" example:"something went wrong"`
	Error   string `json:"error,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message})
}

func FailWithDetail(c *gin.Context, status int, message, detail string) {
	c.JSON(status, ErrorResponse{Message: message, Error: detail})
}

func AbortWith(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}
