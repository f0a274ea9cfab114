// Package file provides HTTP handlers for uploaded files: resumes and
// company logos, stored as database rows and optionally mirrored to cloud
// storage.
package file

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/database"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/model"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/utilities"
)

// FileController handles file upload and download endpoints
type FileController struct {
	DB *database.DBinstanceStruct
	// Storage is optional; when set, uploads are mirrored to cloud storage.
	Storage StorageUploader
}

// NewFileController creates a new instance of FileController
func NewFileController(db *database.DBinstanceStruct, storage StorageUploader) *FileController {
	return &FileController{
		DB:      db,
		Storage: storage,
	}
}

// uploadResponse is the payload answered after a successful upload
type uploadResponse struct {
	FileID int    `json:"file_id"`
	URL    string `json:"url"`
}

func (fc *FileController) storeUpload(c *gin.Context) (*model.File, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("no file provided: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	f := model.File{
		Content:   content,
		Extension: filepath.Ext(header.Filename),
	}
	if err := fc.DB.Create(&f).Error; err != nil {
		return nil, err
	}

	if fc.Storage != nil {
		objectName := fmt.Sprintf("%d%s", f.ID, f.Extension)
		if err := fc.Storage.UploadFile(objectName, &f); err != nil {
			// The DB row is authoritative; a mirror failure is not fatal
			log.Printf("cloud storage mirror failed for file %d: %v", f.ID, err)
		}
	}

	return &f, nil
}

// GetFile serves a stored file by its id with a content type derived from
// the stored extension.
// @Summary Download a stored file
// @Tags File
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "File ID"
// @Success 200 {file} binary "File content"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "File not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /file/{id} [get]
func (fc *FileController) GetFile(c *gin.Context) {
	id := c.Param("id")

	f := model.File{}
	if err := fc.DB.Where("id = ?", id).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "File not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve file: %s", err.Error()),
		})
		return
	}

	contentType := mime.TypeByExtension(f.Extension)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Data(http.StatusOK, contentType, f.Content)
}

// UploadResume stores a job seeker's resume and answers with a reference the
// seeker can attach to an application.
// @Summary Upload a resume
// @Description Only job seekers can access this endpoint
// @Tags File
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param file formData file true "Resume file"
// @Success 201 {object} uploadResponse "Stored file reference"
// @Failure 400 {object} utilities.ErrorResponse "No file provided"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as job seeker"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profile/resume [post]
func (fc *FileController) UploadResume(c *gin.Context) {
	f, err := fc.storeUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, uploadResponse{
		FileID: f.ID,
		URL:    fmt.Sprintf("/api/v1/file/%d", f.ID),
	})
}

// UploadLogo stores a company logo and links it to the caller's company.
// @Summary Upload a company logo
// @Description Only recruiters with a linked company can access this endpoint
// @Tags File
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param file formData file true "Logo file"
// @Success 201 {object} uploadResponse "Stored file reference"
// @Failure 400 {object} utilities.ErrorResponse "No file provided or no linked company"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as recruiter"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/logo [post]
func (fc *FileController) UploadLogo(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var profile model.Profile
	if err := fc.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve profile: %s", err.Error()),
		})
		return
	}
	if profile.CompanyID == nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "No company linked to this profile",
		})
		return
	}

	f, err := fc.storeUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	logoURL := fmt.Sprintf("/api/v1/file/%d", f.ID)
	if err := fc.DB.Model(&model.Company{}).
		Where("id = ?", profile.CompanyID).
		Update("logo_url", logoURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update company logo: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, uploadResponse{
		FileID: f.ID,
		URL:    logoURL,
	})
}
