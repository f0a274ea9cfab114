// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
)

// Role constants for User.Role
var (
	// RoleJobSeeker is a user that browses jobs and submits applications
	RoleJobSeeker = "job_seeker"
	// RoleRecruiter is a user that posts jobs and reviews applications
	RoleRecruiter = "recruiter"
)

// User is the authentication record. One profile exists per user.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Email     string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"type:text" json:"-"`
	Role      string    `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}

// EditableProfileInfo is the part of a profile the owner may change
type EditableProfileInfo struct {
	FullName string  `gorm:"type:text" json:"full_name"`
	Phone    *string `gorm:"type:text" json:"phone,omitempty"`
	Location *string `gorm:"type:text" json:"location,omitempty"`
	Bio      *string `gorm:"type:text" json:"bio,omitempty"`
}

// Profile holds the public identity linked 1:1 to a User.
// Recruiter profiles may be linked to the company they hire for.
type Profile struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"user"`
	EditableProfileInfo
	CompanyID *uuid.UUID `gorm:"type:uuid;index" json:"company_id,omitempty"`
	Company   *Company   `gorm:"foreignKey:CompanyID;references:ID" json:"company,omitempty"`
}

// ProfileResponse is the auth response payload for swagger docs
type ProfileResponse struct {
	Profile     Profile `json:"profile"`
	AccessToken string  `json:"access_token"`
}
