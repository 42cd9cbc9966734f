package database

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"time"

	"luxe-studio/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is nil when the site runs without a database.
var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	// миграции
	err = DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Project{},
		&models.ProjectImage{},
		&models.Inquiry{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
}

// EnsureAdmin creates the staff admin account if no admin exists yet.
// An empty password gets a random one, printed once to the log.
func EnsureAdmin(username, password string) {
	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		// админ уже есть, ничего не делаем
		return
	}

	generated := false
	if password == "" {
		buf := make([]byte, 12)
		if _, err := rand.Read(buf); err != nil {
			log.Printf("failed to generate admin password: %v", err)
			return
		}
		password = base64.RawURLEncoding.EncodeToString(buf)
		generated = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	if generated {
		log.Printf("created default admin user: %s (password: %s)", username, password)
	} else {
		log.Printf("created default admin user: %s", username)
	}
}
