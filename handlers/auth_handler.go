package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-blog-platform/helper"
	"go-blog-platform/middleware"
	"go-blog-platform/models"
	"go-blog-platform/services"
	"go-blog-platform/tokens"
)

type AuthHandler struct {
	authService services.AuthService
	codec       *tokens.Codec
	helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, codec *tokens.Codec, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, codec: codec, helper: h}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"title": "Login", "error": nil})
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"title": "Register", "error": nil})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{"title": "Register", "error": "Invalid form submission"})
		return
	}

	if fieldErrors := h.helper.ValidateForm(req); fieldErrors != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{"title": "Register", "error": h.helper.FirstError(fieldErrors)})
		return
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateIdentity) {
			c.HTML(http.StatusBadRequest, "register.html", gin.H{"title": "Register", "error": err.Error()})
			return
		}
		log.Printf("registration error: %v", err)
		c.HTML(h.helper.GetStatusCode(err), "register.html", gin.H{"title": "Register", "error": "Registration failed. Please try again."})
		return
	}

	h.setTokenCookie(c, resp.Token)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"title": "Login", "error": "Invalid form submission"})
		return
	}

	if fieldErrors := h.helper.ValidateForm(req); fieldErrors != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"title": "Login", "error": h.helper.FirstError(fieldErrors)})
		return
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			c.HTML(http.StatusBadRequest, "login.html", gin.H{"title": "Login", "error": err.Error()})
			return
		}
		log.Printf("login error: %v", err)
		c.HTML(h.helper.GetStatusCode(err), "login.html", gin.H{"title": "Login", "error": "Login failed. Please try again."})
		return
	}

	h.setTokenCookie(c, resp.Token)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearTokenCookie(c)
	c.Redirect(http.StatusFound, "/auth/login")
}

// The cookie lives exactly as long as the token it carries.
func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.CookieName, token, int(h.codec.Validity().Seconds()), "/", "", false, true)
}
