package model

import (
	"time"

	"github.com/google/uuid"
)

// Verification status constants for Company.VerifiedStatus
var (
	// StatusPending indicates the company has not been verified yet
	StatusPending = "pending"
	// StatusVerified indicates the company passed verification
	StatusVerified = "verified"
)

// Company is an organization recruiters post jobs for.
// A company row is created implicitly the first time a recruiter names it.
type Company struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name           string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	LogoURL        *string   `gorm:"type:text" json:"logo_url,omitempty"`
	VerifiedStatus string    `gorm:"type:text;default:'pending'" json:"verified_status"`
	CreatedAt      time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`

	Jobs []Job `gorm:"foreignKey:CompanyID;references:ID" json:"jobs,omitempty"`
}
