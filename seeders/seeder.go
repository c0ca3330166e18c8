package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAdmin creates the initial administrator account. It must run before the
// office seeder because offices record who created them.
func SeedAdmin(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding admin user...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("seeding admin user failed: %v", err)
	}
	log.Println("admin user seeded")
}

// SeedOffices inserts the baseline office directory.
func SeedOffices(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding offices...")

	if err := seedOffices(ctx, db); err != nil {
		log.Fatalf("seeding offices failed: %v", err)
	}
	log.Println("offices seeded")
}
