package dto

import (
	"time"

	"brigade/internal/model"
)

// ReportCreateModel is the wire payload for creating a usage report.
// DonationID is overwritten by the donation-scoped create endpoint.
type ReportCreateModel struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	Category         string    `json:"category"`
	Img              string    `json:"img"`
	DonationID       int       `json:"donationId"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToEntity maps the payload onto a fresh entity.
func (m ReportCreateModel) ToEntity() *model.Report {
	created := m.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	return &model.Report{
		Title:            m.Title,
		Description:      m.Description,
		ShortDescription: m.ShortDescription,
		Category:         m.Category,
		Img:              m.Img,
		IsPublished:      true,
		CreatedAt:        created,
		DonationID:       m.DonationID,
	}
}

// ReportUpdateModel is the wire payload for updating a usage report.
type ReportUpdateModel struct {
	ReportCreateModel
	ID          int  `json:"id"`
	IsPublished bool `json:"isPublished"`
}

func (m ReportUpdateModel) ModelID() int { return m.ID }

// Apply copies every settable field onto the loaded entity. The owning
// donation never changes after creation.
func (m ReportUpdateModel) Apply(r *model.Report) {
	r.Title = m.Title
	r.Description = m.Description
	r.ShortDescription = m.ShortDescription
	r.Category = m.Category
	r.IsPublished = m.IsPublished
}
