package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bazaar/internal/domain"
	applog "bazaar/internal/log"
	"bazaar/internal/services"
)

type UserHandler struct {
	Accounts *services.AccountService
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields required"})
	}
	_, err := h.Accounts.Register(req.Username, req.Email, req.Password, req.Role)
	switch {
	case errors.Is(err, services.ErrMissingFields):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields required"})
	case errors.Is(err, services.ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already in use"})
	case err != nil:
		applog.Error(c, "user.register.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Registration failed"})
	}
	applog.Audit(c, "user.register", map[string]any{"email": req.Email, "role": req.Role})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Registered successfully"})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	u, token, err := h.Accounts.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrUnknownEmail):
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email, "reason": "unknown"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	case errors.Is(err, services.ErrBadCreds):
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	case errors.Is(err, services.ErrBlocked):
		applog.Security(c, "auth.login.blocked", map[string]any{"email": req.Email})
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Your account is blocked. Please contact support."})
	case err != nil:
		applog.Error(c, "auth.login.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Login failed"})
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": req.Email})
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    fiber.Map{"id": u.ID, "username": u.Username, "role": u.Role},
		"token":   token,
	})
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	claims, _ := ClaimsFrom(c)
	u, err := h.Accounts.Get(claims.ID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(u)
}

type profileReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	ShopName string `json:"shopName"`
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	claims, _ := ClaimsFrom(c)
	var req profileReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	u, err := h.Accounts.UpdateProfile(claims.ID, req.Username, req.Email, req.ShopName)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		applog.Error(c, "user.profile.update.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	applog.Audit(c, "user.profile.update", map[string]any{"user": claims.ID})
	return c.JSON(fiber.Map{"message": "Profile updated", "user": u})
}

// ---- Admin user management (uniformly gated; see DESIGN.md) ----

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Accounts.List()
	if err != nil {
		applog.Error(c, "admin.users.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	u, err := h.Accounts.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(u)
}

func (h *UserHandler) Patch(c *fiber.Ctx) error {
	var req profileReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	u, err := h.Accounts.UpdateProfile(c.Params("id"), req.Username, req.Email, req.ShopName)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		applog.Error(c, "admin.users.patch.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}
	applog.Audit(c, "admin.users.patch", map[string]any{"user": u.ID})
	return c.JSON(fiber.Map{"message": "Profile updated", "user": u})
}

func (h *UserHandler) Block(c *fiber.Ctx) error {
	return h.setStatus(c, domain.StatusBlocked, "User blocked")
}

func (h *UserHandler) Unblock(c *fiber.Ctx) error {
	return h.setStatus(c, domain.StatusActive, "User unblocked")
}

func (h *UserHandler) setStatus(c *fiber.Ctx, status, msg string) error {
	u, err := h.Accounts.SetStatus(c.Params("id"), status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		applog.Error(c, "admin.users.status.fail", err, map[string]any{"status": status})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}
	applog.Audit(c, "admin.users.status", map[string]any{"user": u.ID, "status": status})
	return c.JSON(fiber.Map{"message": msg, "user": u})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.Accounts.Delete(c.Params("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		applog.Error(c, "admin.users.delete.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"user": c.Params("id")})
	return c.JSON(fiber.Map{"message": "User deleted"})
}
