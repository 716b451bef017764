package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ActorHeader = "X-Actor"
	actorKey    = "actor"
)

// Actor records who is making the request so mutating calls can stamp
// CreatedBy / ModifiedBy. Requests without the header act as defaultActor.
func Actor(defaultActor string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actor == "" {
			actor = defaultActor
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the actor stored by Actor. It is empty when the
// middleware is not installed.
func ActorFrom(c *gin.Context) string {
	return c.GetString(actorKey)
}
