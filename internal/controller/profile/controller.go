// Package profile provides HTTP handlers for reading and editing the
// authenticated user's profile.
package profile

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/database"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/model"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/utilities"
)

// ProfileController handles profile related endpoints
type ProfileController struct {
	DB *database.DBinstanceStruct
}

// NewProfileController creates a new instance of ProfileController
func NewProfileController(db *database.DBinstanceStruct) *ProfileController {
	return &ProfileController{
		DB: db,
	}
}

type editProfileInfo struct {
	model.EditableProfileInfo
	// CompanyName links a recruiter profile to a company, creating the
	// company row on first mention.
	CompanyName string `json:"company_name"`
}

// GetMyProfile retrieves the caller's profile from database
// and responds with it as JSON.
// @Summary Get own profile
// @Tags Profile
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.Profile "Current profile"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profile/myprofile [get]
func (pc *ProfileController) GetMyProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	profile := model.Profile{}

	if err := pc.DB.Preload("User").
		Preload("Company").
		Where("user_id = ?", user.ID.String()).
		First(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve user information from database: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// EditProfile overrides the editable part of the caller's profile, saves it
// into database, and responds with the edited profile as JSON.
// @Summary Edit own profile
// @Description Only provided fields are changed. Recruiters may pass company_name to link (and implicitly create) their company.
// @Tags Profile
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Info body editProfileInfo true "Profile fields to change"
// @Success 200 {object} model.Profile "Updated profile"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profile [patch]
func (pc *ProfileController) EditProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	profile := model.Profile{}

	if err := pc.DB.Where("user_id = ?", user.ID.String()).First(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve user information from database: %s", err.Error()),
		})
		return
	}

	var info editProfileInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	utilities.MergeNonEmpty(&profile.EditableProfileInfo, &info.EditableProfileInfo)

	// Implicit company creation: a recruiter naming a company gets it
	// found-or-created and linked to their profile.
	companyName := strings.TrimSpace(info.CompanyName)
	if companyName != "" && user.Role == model.RoleRecruiter {
		company := model.Company{}
		if err := pc.DB.Where("name = ?", companyName).
			FirstOrCreate(&company, model.Company{Name: companyName}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to resolve company: %s", err.Error()),
			})
			return
		}
		profile.CompanyID = &company.ID
	}

	if err := pc.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update user information: %s", err.Error()),
		})
		return
	}

	if err := pc.DB.Preload("User").
		Preload("Company").
		Where("user_id = ?", user.ID.String()).
		First(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve updated profile: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}
