package model

// File represents an uploaded file (resume, company logo) stored in the
// database and served back by id.
type File struct {
	ID        int `gorm:"primaryKey"`
	Content   []byte
	Extension string
}
