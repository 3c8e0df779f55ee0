package models

import (
	"strings"
	"time"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"size:100;uniqueIndex;not null"`
	Phone        *string `gorm:"size:20;uniqueIndex"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	FullName     string  `gorm:"size:255"`
	Skills       string  // comma-separated
	Bio          string
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// DisplayName prefers the full name, falling back to the username.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// SkillList splits the comma-separated skills string for rendering.
func (u *User) SkillList() []string {
	return splitSkills(u.Skills)
}

func splitSkills(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
