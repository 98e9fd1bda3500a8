package dto

import (
	"time"

	"brigade/internal/model"
)

// DonationCreateModel is the wire payload for creating a campaign.
type DonationCreateModel struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Goal         int64     `json:"goal"`
	CreationDate time.Time `json:"creationDate"`
	DonationLink string    `json:"donationLink"`
}

// ToEntity maps the payload onto a fresh entity. New campaigns start
// incomplete and without an image.
func (m DonationCreateModel) ToEntity() *model.Donation {
	created := m.CreationDate
	if created.IsZero() {
		created = time.Now().UTC()
	}
	return &model.Donation{
		Title:        m.Title,
		Description:  m.Description,
		Goal:         m.Goal,
		CreationDate: created,
		DonationLink: m.DonationLink,
	}
}

// DonationUpdateModel is the wire payload for updating a campaign.
type DonationUpdateModel struct {
	DonationCreateModel
	ID          int  `json:"id"`
	IsCompleted bool `json:"isCompleted"`
}

func (m DonationUpdateModel) ModelID() int { return m.ID }

// Apply copies every settable field onto the loaded entity. The image path
// is owned by the upload endpoints and is not touched here.
func (m DonationUpdateModel) Apply(d *model.Donation) {
	d.Title = m.Title
	d.Description = m.Description
	d.Goal = m.Goal
	d.CreationDate = m.CreationDate
	d.DonationLink = m.DonationLink
	d.IsCompleted = m.IsCompleted
}
