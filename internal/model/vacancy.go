package model

import "time"

// Vacancy is a published job opening. It has no relations and is managed
// independently of the donation side of the system.
type Vacancy struct {
	ID             int        `json:"id" gorm:"primaryKey"`
	Title          string     `json:"title" gorm:"size:255;not null"`
	Description    string     `json:"description" gorm:"type:text"`
	PostedDate     time.Time  `json:"postedDate"`
	ContactPhone   string     `json:"contactPhone" gorm:"size:50"`
	Requirements   StringList `json:"requirements" gorm:"type:json"`
	Salary         string     `json:"salary" gorm:"size:100"`
	EmploymentType string     `json:"employmentType" gorm:"size:100"`
	EducationLevel string     `json:"educationLevel" gorm:"size:100"`
}

func (v Vacancy) EntityID() int { return v.ID }
