package middleware

import (
	"github.com/gin-gonic/gin"
)

const actorCtxKey = contextKey("actor")

// DefaultActor attributes writes when the caller did not identify itself.
const DefaultActor = "system"

// ActorMiddleware extracts the acting user from the X-Actor header so every
// write can be attributed in audit fields and the audit log.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader("X-Actor")
		if actor == "" {
			actor = DefaultActor
		}
		c.Set(string(actorCtxKey), actor)
		c.Next()
	}
}

// GetActor retrieves the acting user from the Gin context.
func GetActor(c *gin.Context) string {
	actor, exists := c.Get(string(actorCtxKey))
	if !exists {
		return DefaultActor
	}
	s, ok := actor.(string)
	if !ok || s == "" {
		return DefaultActor
	}
	return s
}
