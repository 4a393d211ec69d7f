package handler

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/AnthoniusHendriyanto/account-service/internal/auth/dto"
	autherror "github.com/AnthoniusHendriyanto/account-service/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// Context locals set by the gates.
const (
	LocalUserID       = "user_id"
	LocalUserEmail    = "user_email"
	LocalRefreshToken = "refresh_token"
)

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}

// basicCredentials decodes an Authorization: Basic header into the login
// input used by the credential gate.
func basicCredentials(c *fiber.Ctx) (*dto.LoginInput, error) {
	header := c.Get(fiber.HeaderAuthorization)

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return nil, autherror.ErrAuthenticationFailed
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, autherror.ErrAuthenticationFailed
	}

	email, password, found := strings.Cut(string(decoded), ":")
	if !found || email == "" {
		return nil, autherror.ErrAuthenticationFailed
	}

	return &dto.LoginInput{Email: email, Password: password}, nil
}

// RequireAccess rejects requests without a valid access-class bearer token
// and attaches the caller identity to the request context.
func (h *AuthHandler) RequireAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return writeError(c, autherror.ErrInvalidToken)
		}

		claims, err := h.tokenService.VerifyAccessToken(token)
		if err != nil {
			return writeError(c, err)
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserEmail, claims.Email)

		return c.Next()
	}
}

// OptionalAccess decodes a valid bearer token to attach identity but lets
// the request through either way. Used on public routes.
func (h *AuthHandler) OptionalAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if claims, err := h.tokenService.VerifyAccessToken(token); err == nil {
				c.Locals(LocalUserID, claims.UserID)
				c.Locals(LocalUserEmail, claims.Email)
			}
		}

		return c.Next()
	}
}

// RequireRefresh extracts the bearer token without checking its class; the
// class check happens during rotation.
func (h *AuthHandler) RequireRefresh() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return writeError(c, autherror.ErrInvalidToken)
		}

		c.Locals(LocalRefreshToken, token)

		return c.Next()
	}
}

func writeError(c *fiber.Ctx, err error) error {
	code := autherror.Code(err)

	status := fiber.StatusUnauthorized
	switch code {
	case autherror.CodeValidationFailed:
		status = fiber.StatusBadRequest
	case autherror.CodeInternal:
		status = fiber.StatusInternalServerError
	}

	message := err.Error()
	if code == autherror.CodeInternal {
		message = "internal error"
	} else if wrapped := errors.Unwrap(err); wrapped != nil {
		// Joined verification errors carry parser detail; keep the payload
		// to the sentinel's message.
		message = sentinelMessage(err)
	}

	return c.Status(status).JSON(fiber.Map{
		"code":    code,
		"message": message,
	})
}

func sentinelMessage(err error) string {
	switch {
	case errors.Is(err, autherror.ErrInvalidTokenType):
		return autherror.ErrInvalidTokenType.Error()
	case errors.Is(err, autherror.ErrInvalidToken):
		return autherror.ErrInvalidToken.Error()
	default:
		return err.Error()
	}
}
