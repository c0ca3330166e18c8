package main

import (
	"context"
	"flag"
	"log"

	"employee-system/pkg/config"
	"employee-system/pkg/database/postgresql"
	"employee-system/seeders"
)

func main() {
	runAdmin := flag.Bool("admin", false, "create the initial administrator account")
	runOffices := flag.Bool("offices", false, "insert the baseline office directory")
	runAll := flag.Bool("all", false, "run every seeder (equivalent to -admin -offices)")
	flag.Parse()

	if !*runAdmin && !*runOffices && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	dbPool, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("connecting to postgres failed: %v", err)
	}
	defer dbPool.Close()

	if *runAll || *runAdmin {
		seeders.SeedAdmin(dbPool)
	}
	if *runAll || *runOffices {
		seeders.SeedOffices(dbPool)
	}

	log.Println("seeding finished")
}
