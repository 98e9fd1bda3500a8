package model

import "time"

// Report is a fund-usage disclosure scoped to the donation it spends from.
type Report struct {
	ID               int       `json:"id" gorm:"primaryKey"`
	Title            string    `json:"title" gorm:"size:255;not null"`
	Description      string    `json:"description" gorm:"type:text"`
	ShortDescription string    `json:"shortDescription" gorm:"size:512"`
	Category         string    `json:"category" gorm:"size:100"`
	Img              string    `json:"img" gorm:"size:512;default:''"`
	IsPublished      bool      `json:"isPublished" gorm:"default:true"`
	CreatedAt        time.Time `json:"createdAt"`
	DonationID       int       `json:"donationId" gorm:"not null;index"`
}

func (r Report) EntityID() int { return r.ID }
