package handler

import (
	"errors"
	"net/http"

	"careerconnect/internal/middleware"
	"careerconnect/internal/model"
	"careerconnect/internal/service"
	"careerconnect/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler serves the home page and the register/login/logout flows
type AuthHandler struct {
	service  service.AuthService
	sessions *utils.SessionUtil
	log      *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, sessions *utils.SessionUtil, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{service: s, sessions: sessions, log: log}
}

func (h *AuthHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Flash": takeFlash(c)})
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Flash": takeFlash(c)})
}

func (h *AuthHandler) Register(c *gin.Context) {
	req := model.RegisterRequest{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Confirm:  c.PostForm("confirm"),
		Role:     c.PostForm("role"),
	}

	_, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			setFlash(c, "User already exists")
		case errors.Is(err, service.ErrPasswordMismatch):
			setFlash(c, "Passwords do not match")
		case errors.Is(err, service.ErrInvalidRole):
			setFlash(c, "Please choose a valid role")
		default:
			h.log.Errorf("Registration failed: %v", err)
			renderError(c)
			return
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	setFlash(c, "Registered successfully!")
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Flash": takeFlash(c)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, token, err := h.service.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			setFlash(c, "Invalid credentials")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		h.log.Errorf("Login failed: %v", err)
		renderError(c)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, h.sessions.MaxAge(), "/", "", false, true)
	setFlash(c, "Logged in successfully!")
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	setFlash(c, "Logged out")
	c.Redirect(http.StatusFound, "/")
}

// RegisterAuthRoutes registers the public routes
func (h *AuthHandler) RegisterAuthRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}
