package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/manpower-erp-api/internal/session"
	"github.com/noah-isme/manpower-erp-api/pkg/logger"
)

// SessionHeader carries the session id in both directions.
const SessionHeader = "X-Session-ID"

const contextSessionKey = "erp_session"

type sessionResolver interface {
	Resolve(id string) (*session.Session, bool)
}

// Session attaches the caller's session to the request, starting a new one when
// the header is missing or names an unknown or expired session.
func Session(sessions sessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, created := sessions.Resolve(c.GetHeader(SessionHeader))
		c.Set(contextSessionKey, sess)
		c.Set(logger.SessionIDKey, sess.ID)
		c.Header(SessionHeader, sess.ID)
		if created {
			ensureMeta(c)[sessionNewKey] = true
		}
		c.Next()
	}
}

// SessionFrom returns the session attached by Session.
func SessionFrom(c *gin.Context) (*session.Session, bool) {
	value, exists := c.Get(contextSessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := value.(*session.Session)
	return sess, ok && sess != nil
}
