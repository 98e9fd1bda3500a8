package model

import "time"

// Donation is a fundraising campaign. Goal is stored in the smallest
// currency unit. A donation owns its usage reports; deleting the campaign
// cascades to them on the store side.
type Donation struct {
	ID           int       `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Description  string    `json:"description" gorm:"type:text"`
	Goal         int64     `json:"goal" gorm:"not null"`
	CreationDate time.Time `json:"creationDate"`
	DonationLink string    `json:"donationLink" gorm:"size:512"`
	Img          string    `json:"img" gorm:"size:512;default:''"`
	IsCompleted  bool      `json:"isCompleted" gorm:"default:false"`

	// Relations
	Reports []Report `json:"reports,omitempty" gorm:"foreignKey:DonationID;constraint:OnDelete:CASCADE"`
}

func (d Donation) EntityID() int { return d.ID }
