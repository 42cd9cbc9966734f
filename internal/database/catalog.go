package database

import (
	"cmp"
	"fmt"
	"log"
	"slices"

	"luxe-studio/internal/catalog"
	"luxe-studio/internal/models"

	"gorm.io/gorm"
)

// ToRecords converts a catalog source into rows, numbering Position so that
// catalog and gallery order survive the round trip.
func ToRecords(f *catalog.File) ([]models.Category, []models.Project) {
	cats := make([]models.Category, 0, len(f.Categories))
	for i, c := range f.Categories {
		cats = append(cats, models.Category{
			Key:      c.ID,
			Name:     c.Name,
			Slug:     c.Slug,
			Position: i,
		})
	}

	projects := make([]models.Project, 0, len(f.Projects))
	for i, p := range f.Projects {
		images := make([]models.ProjectImage, 0, len(p.GalleryImages))
		for j, url := range p.GalleryImages {
			images = append(images, models.ProjectImage{Position: j, URL: url})
		}
		projects = append(projects, models.Project{
			Key:              p.ID,
			Title:            p.Title,
			Slug:             p.Slug,
			CategoryKey:      p.Category,
			FeaturedImage:    p.FeaturedImage,
			ShortDescription: p.ShortDescription,
			BodyContent:      p.BodyContent,
			Year:             p.Year,
			Client:           p.Client,
			Location:         p.Location,
			Position:         i,
			Images:           images,
		})
	}

	return cats, projects
}

// FromRecords builds a catalog from rows, ordering by Position.
func FromRecords(cats []models.Category, projects []models.Project) (*catalog.Catalog, error) {
	cats = slices.Clone(cats)
	slices.SortStableFunc(cats, func(a, b models.Category) int { return cmp.Compare(a.Position, b.Position) })
	projects = slices.Clone(projects)
	slices.SortStableFunc(projects, func(a, b models.Project) int { return cmp.Compare(a.Position, b.Position) })

	outCats := make([]catalog.Category, 0, len(cats))
	for _, c := range cats {
		outCats = append(outCats, catalog.Category{ID: c.Key, Name: c.Name, Slug: c.Slug})
	}

	outProjects := make([]catalog.Project, 0, len(projects))
	for _, p := range projects {
		images := slices.Clone(p.Images)
		slices.SortStableFunc(images, func(a, b models.ProjectImage) int { return cmp.Compare(a.Position, b.Position) })
		gallery := make([]string, 0, len(images))
		for _, img := range images {
			gallery = append(gallery, img.URL)
		}

		outProjects = append(outProjects, catalog.Project{
			ID:               p.Key,
			Title:            p.Title,
			Slug:             p.Slug,
			Category:         p.CategoryKey,
			FeaturedImage:    p.FeaturedImage,
			GalleryImages:    gallery,
			ShortDescription: p.ShortDescription,
			BodyContent:      p.BodyContent,
			Year:             p.Year,
			Client:           p.Client,
			Location:         p.Location,
		})
	}

	return catalog.New(outCats, outProjects)
}

// SeedCatalog fills empty catalog tables from a catalog source. It reports
// false without writing anything when projects already exist.
func SeedCatalog(f *catalog.File) (bool, error) {
	// проверяем исходник до записи в БД
	if _, err := catalog.New(f.Categories, f.Projects); err != nil {
		return false, err
	}

	cats, projects := ToRecords(f)
	seeded := false

	err := DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Project{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count projects: %w", err)
		}
		if count > 0 {
			return nil
		}

		if len(cats) > 0 {
			if err := tx.Create(&cats).Error; err != nil {
				return fmt.Errorf("create categories: %w", err)
			}
		}
		if len(projects) > 0 {
			if err := tx.Create(&projects).Error; err != nil {
				return fmt.Errorf("create projects: %w", err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		log.Printf("seeded catalog: %d categories, %d projects", len(cats), len(projects))
	}
	return seeded, nil
}

func LoadCatalog() (*catalog.Catalog, error) {
	var cats []models.Category
	if err := DB.Order("position asc").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	var projects []models.Project
	err := DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Order("position asc").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}

	return FromRecords(cats, projects)
}
