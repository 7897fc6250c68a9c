package handlers

import (
	"errors"

	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/models"
	"github.com/FREDDY-SELVANATHAN/Inventory-Management-Emart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles registration and login for admin users.
type AuthHandler struct {
	service  *services.AuthService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *services.AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		validate: models.NewValidator(),
		log:      log,
	}
}

// RegisterRoutes registers the auth routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/register", h.HandleRegister)
	auth.Post("/login", h.HandleLogin)
}

// HandleRegister creates a new admin user.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var input models.RegisterUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(&input); err != nil {
		return respondError(c, h.log, models.WrapValidatorError(err), "Failed to register user")
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	}
	if err := h.service.RegisterUser(&user); err != nil {
		if errors.Is(err, models.ErrDuplicateName) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "username or email already registered",
			})
		}
		return respondError(c, h.log, err, "Failed to register user")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
	})
}

// HandleLogin authenticates a user and returns a JWT.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	token, err := h.service.LoginUser(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid credentials",
			})
		}
		return respondError(c, h.log, err, "Failed to log in")
	}
	return c.JSON(fiber.Map{"token": token})
}
