package middleware

import (
	"github.com/gin-gonic/gin"

	domainerrors "cenit-labs.backend/internal/domain/errors"
	"cenit-labs.backend/internal/interfaces/http/response"
	"cenit-labs.backend/pkg/crypto"
)

// AdminPasswordHeader carries the admin credential on mutating requests.
const AdminPasswordHeader = "X-Admin-Password"

// AdminGate verifies the admin password against a bcrypt hash. With no hash
// configured the gate is disabled and the API stays open; the old
// client-side prompt is then a UX deterrent only, not access control.
func AdminGate(passwordHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if passwordHash == "" {
			c.Next()
			return
		}

		password := c.GetHeader(AdminPasswordHeader)
		if password == "" || !crypto.CheckPassword(password, passwordHash) {
			response.Error(c, domainerrors.Unauthorized("invalid admin credentials"))
			c.Abort()
			return
		}

		c.Next()
	}
}
