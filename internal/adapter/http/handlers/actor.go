package handlers

import (
	"net/http"
	"strings"

	"b2b_sourcing/internal/domain/entities"
	"b2b_sourcing/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderActorRole = "X-Actor-Role"
	HeaderActorID   = "X-Actor-ID"

	actorContextKey = "sourcing.actor"
)

var (
	errActorRequired = pkg.NewDomainErrorSimple("ACTOR_REQUIRED", "X-Actor-Role and X-Actor-ID headers are required", http.StatusUnauthorized)
	errInvalidActor  = pkg.NewDomainErrorSimple("INVALID_ACTOR", "Unknown actor role", http.StatusBadRequest)
)

// RequireActor reads the caller identity asserted by the upstream gateway.
// The system role is internal and never accepted from a header.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entities.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderActorRole))))
		id := strings.TrimSpace(c.GetHeader(HeaderActorID))
		if role == "" || id == "" {
			c.AbortWithStatusJSON(errActorRequired.HTTPStatus, errActorRequired.ToHTTPError())
			return
		}
		if !entities.ValidRole(role) || role == entities.RoleSystem {
			c.AbortWithStatusJSON(errInvalidActor.HTTPStatus, errInvalidActor.ToHTTPError())
			return
		}
		c.Set(actorContextKey, entities.Actor{Role: role, ID: id})
		c.Next()
	}
}

func actorFrom(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if a, ok := v.(entities.Actor); ok {
			return a
		}
	}
	return entities.Actor{}
}
