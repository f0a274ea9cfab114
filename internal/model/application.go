package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// ApplicationStatusPending indicates that the application is waiting for review
	ApplicationStatusPending = "pending"
	// ApplicationStatusReviewing indicates that the recruiter is reviewing the application
	ApplicationStatusReviewing = "reviewing"
	// ApplicationStatusInterviewScheduled indicates that an interview has been scheduled
	ApplicationStatusInterviewScheduled = "interview_scheduled"
	// ApplicationStatusAccepted indicates that the application has been accepted
	ApplicationStatusAccepted = "accepted"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "rejected"
)

// ApplicationStatuses lists every legal status value, initial value first.
var ApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusReviewing,
	ApplicationStatusInterviewScheduled,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

// ValidApplicationStatus reports whether s is one of the defined status values.
func ValidApplicationStatus(s string) bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Application represents a job application record.
// The status field is re-assignable by the owning recruiter; there is no
// enforced ordering between the status values.
type Application struct {
	ID uint `gorm:"primaryKey;autoIncrement;->" json:"id"`

	// JobID references Job.ID
	JobID uint `gorm:"not null;index" json:"job_id"`
	Job   Job  `gorm:"foreignKey:JobID;references:ID" json:"job"`

	// ApplicantID references Profile.UserID
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;index" json:"applicant_id"`
	Applicant   Profile   `gorm:"foreignKey:ApplicantID;references:UserID" json:"applicant"`

	Status      string  `gorm:"type:text;default:'pending'" json:"status"`
	CoverLetter *string `gorm:"type:text" json:"cover_letter,omitempty"`

	// ResumeID references a stored File; ResumeURL is kept alongside so the
	// client can reference an externally hosted resume instead.
	ResumeID  *int    `json:"resume_id,omitempty"`
	Resume    *File   `gorm:"foreignKey:ResumeID;references:ID" json:"-"`
	ResumeURL *string `gorm:"type:text" json:"resume_url,omitempty"`

	AppliedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"applied_at"`
	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`
	Score     *int      `json:"score,omitempty"`
}
