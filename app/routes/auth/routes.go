package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authAPI := app.Group("/api/auth")

	// Public routes
	authAPI.Post("/register", RegisterAPI)
	authAPI.Post("/login", LoginAPI)
	authAPI.Post("/logout", LogoutAPI)

	// Protected routes
	authAPI.Use(AuthMiddleware)
	authAPI.Get("/me", MeAPI)
	authAPI.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the JWT and sets the user and tenant context.
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("organization_id", claims.OrganizationID)
	c.Locals("role", claims.Role)

	return c.Next()
}

// OrgID returns the tenant of the authenticated request.
func OrgID(c *fiber.Ctx) string {
	id, _ := c.Locals("organization_id").(string)
	return id
}

// UserID returns the authenticated user.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
