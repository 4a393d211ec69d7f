package handler

import (
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/dto"
	"github.com/AnthoniusHendriyanto/account-service/internal/auth/service"
	autherror "github.com/AnthoniusHendriyanto/account-service/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService   *service.UserService
	unlockService *service.UnlockService
	tokenService  service.TokenGenerator
}

func NewAuthHandler(userService *service.UserService, unlockService *service.UnlockService,
	tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		unlockService: unlockService,
		tokenService:  tokenService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return writeError(c, autherror.ErrValidationFailed)
	}

	account, tokens, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":           account.ID,
		"email":        account.Email,
		"username":     account.Username,
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}

// Login exchanges Basic credentials for a token pair.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	input, err := basicCredentials(c)
	if err != nil {
		return writeError(c, err)
	}
	input.IPAddress = c.IP()

	tokenPair, err := h.userService.Login(c.Context(), *input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokenPair)
}

// Refresh rotates the bearer refresh token placed in locals by the refresh
// gate.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	token, _ := c.Locals(LocalRefreshToken).(string)

	input := dto.RefreshInput{
		RefreshToken: token,
		IPAddress:    c.IP(),
	}

	tokens, err := h.userService.Rotate(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(LocalRefreshToken).(string)

	if err := h.userService.Logout(c.Context(), dto.LogoutInput{RefreshToken: token}); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// RequestUnlock always answers success-shaped so the endpoint cannot be
// used to probe which emails exist.
func (h *AuthHandler) RequestUnlock(c *fiber.Ctx) error {
	var input dto.UnlockRequestInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return writeError(c, autherror.ErrValidationFailed)
	}

	if err := h.unlockService.RequestUnlock(c.Context(), input); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "if the account exists, a verification code has been sent",
	})
}

func (h *AuthHandler) VerifyUnlock(c *fiber.Ctx) error {
	var input dto.UnlockVerifyInput
	if err := c.BodyParser(&input); err != nil {
		return writeError(c, autherror.ErrValidationFailed)
	}

	if err := h.unlockService.VerifyUnlock(c.Context(), input); err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "account unlocked; a temporary password has been sent by email",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals(LocalUserID).(string)

	profile, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}
