// Package middleware provides the session-backed access gate.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// UserSessionKey is the session key holding the logged-in user's id.
const UserSessionKey = "user_id"

const userLocalsKey = "userID"

// SessionProtected rejects any request whose session carries no
// resolved user identity. It performs no I/O beyond the session read;
// the user id is parked in locals for handlers to pick up.
func SessionProtected(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return unauthenticated(c)
		}
		raw, _ := sess.Get(UserSessionKey).(string)
		if raw == "" {
			return unauthenticated(c)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return unauthenticated(c)
		}
		c.Locals(userLocalsKey, id)
		return c.Next()
	}
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Not authenticated",
	})
}

// UserID returns the authenticated user's id set by SessionProtected.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userLocalsKey).(uuid.UUID)
	return id, ok
}
