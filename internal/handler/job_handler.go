package handler

import (
	"errors"
	"net/http"
	"strconv"

	"careerconnect/internal/model"
	"careerconnect/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// JobHandler serves the dashboard, job posting and application flows
type JobHandler struct {
	jobs     service.JobService
	profiles service.ProfileService
	log      *logrus.Logger
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobs service.JobService, profiles service.ProfileService, log *logrus.Logger) *JobHandler {
	return &JobHandler{jobs: jobs, profiles: profiles, log: log}
}

func (h *JobHandler) Dashboard(c *gin.Context) {
	jobs, err := h.jobs.ListJobs(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list jobs: %v", err)
		renderError(c)
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Jobs":  jobs,
		"Flash": takeFlash(c),
	})
}

func (h *JobHandler) ShowAddJob(c *gin.Context) {
	c.HTML(http.StatusOK, "add_job.html", gin.H{"Flash": takeFlash(c)})
}

func (h *JobHandler) AddJob(c *gin.Context) {
	req := model.CreateJobRequest{
		Title:       c.PostForm("title"),
		Location:    c.PostForm("location"),
		Role:        c.PostForm("role"),
		Salary:      c.PostForm("salary"),
		Description: c.PostForm("description"),
	}

	if _, err := h.jobs.CreateJob(c.Request.Context(), req); err != nil {
		h.log.Errorf("Failed to create job: %v", err)
		renderError(c)
		return
	}

	setFlash(c, "Job added successfully!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// loadJob looks up the job from the path parameter. An unparseable or unknown
// id yields a nil job; the apply page renders with the job absent rather than
// answering 404.
func (h *JobHandler) loadJob(c *gin.Context) (*model.Job, bool) {
	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		return nil, true
	}
	job, err := h.jobs.GetJob(c.Request.Context(), jobID)
	if err != nil {
		h.log.Errorf("Failed to load job %d: %v", jobID, err)
		renderError(c)
		return nil, false
	}
	return job, true
}

func (h *JobHandler) ShowApply(c *gin.Context) {
	job, ok := h.loadJob(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "apply.html", gin.H{
		"Job":   job,
		"JobID": c.Param("job_id"),
		"Flash": takeFlash(c),
	})
}

func (h *JobHandler) Apply(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		// No file submitted: re-render the form with no status message
		job, ok := h.loadJob(c)
		if !ok {
			return
		}
		c.HTML(http.StatusOK, "apply.html", gin.H{
			"Job":   job,
			"JobID": c.Param("job_id"),
		})
		return
	}

	if _, err := h.profiles.SubmitApplication(c.Request.Context(), userID, fileHeader); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFileFormat),
			errors.Is(err, service.ErrFileSizeExceeded),
			errors.Is(err, service.ErrEmptyFilename):
			setFlash(c, err.Error())
			c.Redirect(http.StatusFound, "/apply/"+c.Param("job_id"))
		default:
			h.log.Errorf("Failed to submit application: %v", err)
			renderError(c)
		}
		return
	}

	setFlash(c, "Application submitted successfully!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// RegisterJobRoutes registers the session-gated job routes
func (h *JobHandler) RegisterJobRoutes(r *gin.Engine, sessionMW, employerMW gin.HandlerFunc) {
	authed := r.Group("/")
	authed.Use(sessionMW)
	{
		authed.GET("/dashboard", h.Dashboard)
		authed.GET("/apply/:job_id", h.ShowApply)
		authed.POST("/apply/:job_id", h.Apply)
	}

	employer := r.Group("/")
	employer.Use(sessionMW, employerMW)
	{
		employer.GET("/add_job", h.ShowAddJob)
		employer.POST("/add_job", h.AddJob)
	}
}
