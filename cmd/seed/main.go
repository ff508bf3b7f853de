package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-blog-platform/config"
	"github.com/oksasatya/go-blog-platform/internal/domain/entity"
	"github.com/oksasatya/go-blog-platform/internal/domain/repository"
	pginfra "github.com/oksasatya/go-blog-platform/internal/infrastructure/postgres"
	"github.com/oksasatya/go-blog-platform/pkg/helpers"
)

// Seeds an active admin account and a few starter categories. Safe to run
// repeatedly; existing rows are left alone.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	categories := pginfra.NewCategoryRepository(pool)

	adminEmail := "admin@example.com"
	if _, err := users.GetByEmail(ctx, adminEmail); errors.Is(err, repository.ErrNotFound) {
		hash, err := helpers.HashPassword("Admin123")
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		u := &entity.User{
			Email:        adminEmail,
			PasswordHash: hash,
			Name:         "Admin",
			Status:       entity.UserStatusPending,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("create admin: %v", err)
		}
		if err := users.UpdateStatus(ctx, u.ID, entity.UserStatusActive); err != nil {
			log.Fatalf("activate admin: %v", err)
		}
		log.Printf("created admin user %s", adminEmail)
	} else if err != nil {
		log.Fatalf("lookup admin: %v", err)
	} else {
		log.Printf("admin user %s already exists", adminEmail)
	}

	for _, name := range []string{"General", "Engineering", "Life"} {
		slug := helpers.Slugify(name)
		if _, err := categories.GetBySlug(ctx, slug); errors.Is(err, repository.ErrNotFound) {
			if err := categories.Create(ctx, &entity.Category{Name: name, Slug: slug}); err != nil {
				log.Fatalf("create category %s: %v", name, err)
			}
			log.Printf("created category %s", name)
		} else if err != nil {
			log.Fatalf("lookup category %s: %v", name, err)
		}
	}

	log.Println("seed complete")
}
