package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type officeSeed struct {
	Name     string
	Location string
}

var defaultOffices = []officeSeed{
	{Name: "Head Office", Location: "Dushanbe"},
	{Name: "Northern Branch", Location: "Khujand"},
	{Name: "Southern Branch", Location: "Bokhtar"},
}

func seedOffices(ctx context.Context, db *pgxpool.Pool) error {
	var createdBy uint64
	if err := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, adminEmail).Scan(&createdBy); err != nil {
		return fmt.Errorf("office seeder requires the admin user, run the admin seeder first: %w", err)
	}

	for _, office := range defaultOffices {
		tag, err := db.Exec(ctx,
			`INSERT INTO offices (name, location, created_by) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			office.Name, office.Location, createdBy,
		)
		if err != nil {
			return fmt.Errorf("inserting office %q: %w", office.Name, err)
		}
		if tag.RowsAffected() == 0 {
			log.Printf("  - office %q already exists, skipping", office.Name)
		}
	}
	return nil
}
