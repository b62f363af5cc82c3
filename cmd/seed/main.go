// Command seed populates the database with demo users and applications.
package main

import (
	"flag"
	"log"

	"jobtrail/internal/config"
	"jobtrail/internal/database"
	"jobtrail/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of demo users to create")
	flag.IntVar(&opts.ApplicationsPerUser, "apps", opts.ApplicationsPerUser, "applications per user")
	flag.StringVar(&opts.Password, "password", opts.Password, "password for all demo users")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d users with %d applications each", opts.Users, opts.ApplicationsPerUser)
}
