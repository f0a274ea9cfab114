package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EditableJobInfo is the part of a job post the owning recruiter can edit
type EditableJobInfo struct {
	Title           string         `gorm:"type:text" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Requirements    pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Benefits        pq.StringArray `gorm:"type:text[]" json:"benefits"`
	Location        string         `gorm:"type:text" json:"location"`
	SalaryMin       *int           `json:"salary_min,omitempty"`
	SalaryMax       *int           `json:"salary_max,omitempty"`
	EmploymentType  string         `gorm:"type:text" json:"employment_type"`
	ExperienceLevel *string        `gorm:"type:text" json:"experience_level,omitempty"`
	RemotePolicy    *string        `gorm:"type:text" json:"remote_policy,omitempty"`
}

// Validate checks the field constraints that hold for every job post.
func (e *EditableJobInfo) Validate() error {
	if e.Title == "" || e.Description == "" {
		return fmt.Errorf("title and description are required")
	}
	if e.SalaryMin != nil && e.SalaryMax != nil && *e.SalaryMin > *e.SalaryMax {
		return fmt.Errorf("salary_min must not exceed salary_max")
	}
	return nil
}

// Job is gorm model for store job post data in DB
type Job struct {
	ID       uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	PostedBy uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"posted_by"`
	Poster   Profile   `gorm:"foreignKey:PostedBy;references:UserID" json:"poster"`

	CompanyID *uuid.UUID `gorm:"type:uuid;index;<-:create" json:"company_id,omitempty"`
	Company   *Company   `gorm:"foreignKey:CompanyID;references:ID" json:"company,omitempty"`

	EditableJobInfo
	IsActive  bool      `gorm:"type:boolean;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`

	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

// JobResponse is the listing payload: a job plus whether the requesting
// job seeker already applied to it.
type JobResponse struct {
	ID        uint       `json:"id"`
	PostedBy  uuid.UUID  `json:"posted_by"`
	Poster    Profile    `json:"poster"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	Company   *Company   `json:"company,omitempty"`
	EditableJobInfo
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UserApplied bool      `json:"user_applied"`
}

// ToJobResponse converts Job to JobResponse for the given requesting user
func (j *Job) ToJobResponse(user User) (JobResponse, error) {

	var resp JobResponse

	b, err := json.Marshal(j)
	if err != nil {
		return resp, err
	}

	err = json.Unmarshal(b, &resp)
	if err != nil {
		return resp, err
	}

	userApplied := false

	if user.Role == RoleJobSeeker {
		for _, application := range j.Applications {
			if application.ApplicantID.String() == user.ID.String() {
				userApplied = true
				break
			}
		}
	}
	resp.UserApplied = userApplied

	return resp, nil
}
