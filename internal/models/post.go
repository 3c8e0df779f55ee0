package models

import "time"

type Post struct {
	ID             uint   `gorm:"primaryKey"`
	Title          string `gorm:"size:255;not null"`
	Description    string `gorm:"not null"`
	RequiredSkills string // comma-separated
	AuthorID       uint      `gorm:"not null;index"`
	Author         User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// SkillList splits the comma-separated required skills for rendering.
func (p *Post) SkillList() []string {
	return splitSkills(p.RequiredSkills)
}

// PostedOn formats the creation date for page display.
func (p *Post) PostedOn() string {
	return p.CreatedAt.Format("2006-01-02")
}
