// Package application provides HTTP handlers for job application operations:
// submitting, recruiter status updates and role-scoped listing.
package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/database"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/model"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/utilities"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	DB *database.DBinstanceStruct
}

// NewApplicationController creates a new instance of ApplicationController with the provided database connection.
func NewApplicationController(db *database.DBinstanceStruct) *ApplicationController {
	return &ApplicationController{
		DB: db,
	}
}

type submitInfo struct {
	JobID       uint    `json:"job_id" binding:"required"`
	CoverLetter *string `json:"cover_letter"`
	ResumeID    *int    `json:"resume_id"`
	ResumeURL   *string `json:"resume_url"`
}

type statusUpdateInfo struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// SubmitHandler handles the creation of a new job application by a job seeker.
// The applicant id is always the authenticated caller, never client-supplied.
// @Summary Create job application
// @Description Only job seekers can access this endpoint. The referenced job must exist and be active.
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param application body submitInfo true "Application information"
// @Success 201 {object} model.Application "Successfully applied to job post"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body, missing or inactive job"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as job seeker"
// @Failure 409 {object} utilities.ErrorResponse "Already applied to this job"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application [post]
func (ac *ApplicationController) SubmitHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info submitInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	// The job must exist and still accept applications
	var job model.Job
	if err := ac.DB.Where("id = ?", info.JobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: "Job post not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job post: %s", err.Error()),
		})
		return
	}
	if !job.IsActive {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Job post is no longer active",
		})
		return
	}

	// Prevent duplicate applications to the same job post
	existing := model.Application{}
	if err := ac.DB.
		Where("applicant_id = ? AND job_id = ?", user.ID, info.JobID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, utilities.ErrorResponse{
			Error: "You have already applied to this job post",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to check existing application",
		})
		return
	}

	application := model.Application{
		JobID:       info.JobID,
		ApplicantID: user.ID,
		Status:      model.ApplicationStatusPending,
		CoverLetter: info.CoverLetter,
		ResumeID:    info.ResumeID,
		ResumeURL:   info.ResumeURL,
	}

	if err := ac.DB.Create(&application).Error; err != nil {
		var pqErr *pgconn.PgError
		// Foreign key violation means JobID or ResumeID is invalid
		if errors.As(err, &pqErr) {
			if pqErr.Code == "23503" {
				c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
					Error: fmt.Sprintf("Invalid JobID or ResumeID: %s", err.Error()),
				})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, application)
}

// UpdateStatusHandler replaces an application's status, and notes when
// supplied. Only the recruiter who posted the referenced job may call it.
// Re-setting the current status is not an error.
// @Summary Update application status
// @Description Status must be one of pending, reviewing, interview_scheduled, accepted, rejected
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired application"
// @Param update body statusUpdateInfo true "New status and optional recruiter notes"
// @Success 200 {object} model.Application "Successfully updated application"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or unknown status value"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Caller did not post the referenced job"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application/{id} [patch]
func (ac *ApplicationController) UpdateStatusHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id := c.Param("id")

	var info statusUpdateInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if !model.ValidApplicationStatus(info.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Status '%s' is not a valid application status", info.Status),
		})
		return
	}

	application := model.Application{}
	if err := ac.DB.Preload("Job").Where("id = ?", id).First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return
	}

	// Only the recruiter who posted the job may change the status
	if application.Job.PostedBy.String() != user.ID.String() {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to update this application",
		})
		return
	}

	updates := map[string]interface{}{"status": info.Status}
	if info.Notes != nil {
		updates["notes"] = *info.Notes
	}

	if err := ac.DB.Model(&application).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update application: %s", err.Error()),
		})
		return
	}

	application.Status = info.Status
	if info.Notes != nil {
		application.Notes = info.Notes
	}

	c.JSON(http.StatusOK, application)
}

// ListHandler returns the applications visible to the caller, newest first:
// a job seeker sees their own submissions, a recruiter sees every application
// to the jobs they posted.
// @Summary List applications visible to the caller
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Application "Applications ordered by applied_at descending"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application [get]
func (ac *ApplicationController) ListHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var applications []model.Application

	query := ac.DB.Preload("Job").
		Preload("Job.Company").
		Preload("Applicant").
		Preload("Applicant.User").
		Order("applied_at DESC")

	switch user.Role {
	case model.RoleRecruiter:
		query = query.
			Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.posted_by = ?", user.ID)
	default:
		query = query.Where("applicant_id = ?", user.ID)
	}

	if err := query.Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve applications: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, applications)
}
