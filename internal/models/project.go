package models

import "gorm.io/gorm"

// Category is the database form of a portfolio category. Key is the filter
// key shown to visitors ("retail", "office", ...).
type Category struct {
	gorm.Model
	Key      string `gorm:"size:64;uniqueIndex;not null"`
	Name     string `gorm:"size:255;not null"`
	Slug     string `gorm:"size:255"`
	Position int    `gorm:"not null;default:0"`
}

type Project struct {
	gorm.Model
	Key              string `gorm:"size:64;uniqueIndex;not null"`
	Title            string `gorm:"size:255;not null"`
	Slug             string `gorm:"size:255"`
	CategoryKey      string `gorm:"size:64;index"` // не FK: проект может ссылаться на несуществующую категорию
	FeaturedImage    string `gorm:"size:1024"`
	ShortDescription string `gorm:"size:512"`
	BodyContent      string `gorm:"type:text"`
	Year             string `gorm:"size:16"`
	Client           string `gorm:"size:255"`
	Location         string `gorm:"size:255"`
	Position         int    `gorm:"not null;default:0"` // порядок в каталоге

	Images []ProjectImage
}

// ProjectImage: кадр галереи, Position задаёт порядок показа
type ProjectImage struct {
	ID        uint   `gorm:"primaryKey"`
	ProjectID uint   `gorm:"index;not null"`
	Position  int    `gorm:"not null"`
	URL       string `gorm:"size:1024;not null"`
}
