package dto

import (
	"time"

	"brigade/internal/model"
)

// VacancyCreateModel is the wire payload for creating a vacancy.
type VacancyCreateModel struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PostedDate     time.Time `json:"postedDate"`
	ContactPhone   string    `json:"contactPhone"`
	Requirements   []string  `json:"requirements"`
	Salary         string    `json:"salary"`
	EmploymentType string    `json:"employmentType"`
	EducationLevel string    `json:"educationLevel"`
}

// ToEntity maps the payload onto a fresh entity. A missing posted date
// defaults to now, matching the public listing behavior.
func (m VacancyCreateModel) ToEntity() *model.Vacancy {
	posted := m.PostedDate
	if posted.IsZero() {
		posted = time.Now().UTC()
	}
	return &model.Vacancy{
		Title:          m.Title,
		Description:    m.Description,
		PostedDate:     posted,
		ContactPhone:   m.ContactPhone,
		Requirements:   model.StringList(m.Requirements),
		Salary:         m.Salary,
		EmploymentType: m.EmploymentType,
		EducationLevel: m.EducationLevel,
	}
}

// VacancyUpdateModel is the wire payload for updating a vacancy.
type VacancyUpdateModel struct {
	VacancyCreateModel
	ID int `json:"id"`
}

func (m VacancyUpdateModel) ModelID() int { return m.ID }

// Apply copies every settable field onto the loaded entity.
func (m VacancyUpdateModel) Apply(v *model.Vacancy) {
	v.Title = m.Title
	v.Description = m.Description
	v.PostedDate = m.PostedDate
	v.ContactPhone = m.ContactPhone
	v.Requirements = model.StringList(m.Requirements)
	v.Salary = m.Salary
	v.EmploymentType = m.EmploymentType
	v.EducationLevel = m.EducationLevel
}
