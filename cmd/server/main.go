package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"luxe-studio/internal/catalog"
	"luxe-studio/internal/config"
	"luxe-studio/internal/content"
	"luxe-studio/internal/database"
	"luxe-studio/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	if cfg.DatabaseEnabled() {
		database.Init(cfg.DBDSN)
		database.EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	for _, issue := range cat.Validate() {
		log.Printf("catalog warning: %s", issue)
	}
	log.Printf("catalog loaded from %s: %d projects, %d categories", cfg.CatalogSource, cat.Len(), len(cat.Categories()))

	site, err := content.Load(cfg.SiteFile)
	if err != nil {
		log.Fatalf("failed to load site content: %v", err)
	}

	r := server.NewRouter(cfg, cat, site)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// loadCatalog reads the catalog once; it stays fixed until restart.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogSource != config.CatalogFromDatabase {
		return catalog.Load(cfg.CatalogFile)
	}

	// пустые таблицы заполняем из файла каталога
	r, err := catalog.Open(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	src, err := catalog.DecodeFile(r)
	if err != nil {
		return nil, err
	}
	if _, err := database.SeedCatalog(src); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	return database.LoadCatalog()
}
