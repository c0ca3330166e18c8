package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"employee-system/pkg/types"
	"employee-system/pkg/utils"
)

const adminEmail = "admin@employee-system.local"

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	var userID uint64
	err := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, adminEmail).Scan(&userID)
	if err == nil {
		log.Println("  - admin user already exists, skipping")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("checking for existing admin: %w", err)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
		log.Println("  - ADMIN_PASSWORD not set, using the default; change it after first login")
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	err = db.QueryRow(ctx,
		`INSERT INTO users (fio, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id`,
		"System Administrator", adminEmail, passwordHash, types.RoleAdmin,
	).Scan(&userID)
	if err != nil {
		return fmt.Errorf("inserting admin user: %w", err)
	}

	log.Printf("  - admin user created (id=%d, email=%s)", userID, adminEmail)
	return nil
}
