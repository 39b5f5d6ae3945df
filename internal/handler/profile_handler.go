package handler

import (
	"errors"
	"net/http"
	"os"

	"careerconnect/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ProfileHandler serves the profile page and the resume download
type ProfileHandler struct {
	profiles service.ProfileService
	log      *logrus.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profiles service.ProfileService, log *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log}
}

func (h *ProfileHandler) ShowProfile(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.profiles.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Errorf("Failed to load user %d: %v", userID, err)
		renderError(c)
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":  user,
		"Flash": takeFlash(c),
	})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := h.profiles.UpdateProfile(c.Request.Context(), userID, c.PostForm("profile")); err != nil {
		h.log.Errorf("Failed to update profile for user %d: %v", userID, err)
		renderError(c)
		return
	}

	user, err := h.profiles.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Errorf("Failed to reload user %d: %v", userID, err)
		renderError(c)
		return
	}

	// The update is confirmed on the same render, not via redirect
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":  user,
		"Flash": "Profile updated successfully!",
	})
}

// DownloadResume serves the requesting user's own stored resume
func (h *ProfileHandler) DownloadResume(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	filePath, fileName, err := h.profiles.ResumePath(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrResumeNotFound) || errors.Is(err, service.ErrUserNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{})
			return
		}
		h.log.Errorf("Failed to resolve resume path for user %d: %v", userID, err)
		renderError(c)
		return
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{})
		return
	}

	c.FileAttachment(filePath, fileName)
}

// RegisterProfileRoutes registers the session-gated profile routes
func (h *ProfileHandler) RegisterProfileRoutes(r *gin.Engine, sessionMW gin.HandlerFunc) {
	authed := r.Group("/")
	authed.Use(sessionMW)
	{
		authed.GET("/profile", h.ShowProfile)
		authed.POST("/profile", h.UpdateProfile)
		authed.GET("/uploads/resume", h.DownloadResume)
	}
}
