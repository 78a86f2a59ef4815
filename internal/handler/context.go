package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextUserID is the gin context key under which the auth middleware
// stores the authenticated caller's user id.
const ContextUserID = "userID"

// CurrentUserID returns the authenticated caller's id. It is only valid
// on routes behind the auth middleware.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
