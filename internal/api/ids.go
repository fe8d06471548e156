package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParamID parses a UUID path parameter, writing a 400 response when it is
// malformed. ok is false when the handler should return.
func ParamID(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		BadRequest(c, "Invalid "+label+" ID format.")
		return uuid.Nil, false
	}
	return id, true
}
