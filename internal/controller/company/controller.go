// Package company provides HTTP handlers for company related operations.
package company

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/database"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/model"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/utilities"
)

// CompanyController handles company related endpoints
type CompanyController struct {
	DB *database.DBinstanceStruct
}

// NewCompanyController creates a new instance of CompanyController
func NewCompanyController(db *database.DBinstanceStruct) *CompanyController {
	return &CompanyController{
		DB: db,
	}
}

// GetCompanies fetches every company with their job posts preloaded.
// @Summary List companies
// @Tags Company
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Company "Companies"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company [get]
func (cc *CompanyController) GetCompanies(c *gin.Context) {
	var companies []model.Company

	if err := cc.DB.Preload("Jobs").Order("name ASC").Find(&companies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve companies: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, companies)
}

// GetCompanyByID retrieves a company by its ID with job posts preloaded.
// @Summary Get a company by ID
// @Tags Company
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param company_id path string true "Company ID"
// @Success 200 {object} model.Company "Company"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Company not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/{company_id} [get]
func (cc *CompanyController) GetCompanyByID(c *gin.Context) {
	companyID := c.Param("company_id")

	company := model.Company{}

	if err := cc.DB.Preload("Jobs").
		Where("id = ?", companyID).
		First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve company information from database: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, company)
}
