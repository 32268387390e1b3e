// Command main runs the database seeder for Workhub.
package main

import (
	"flag"
	"log"

	"workhub/internal/config"
	"workhub/internal/database"
	"workhub/internal/middleware"
	"workhub/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.NumRecruiters, "recruiters", opts.NumRecruiters, "Number of recruiter accounts to create")
	flag.IntVar(&opts.NumCandidates, "candidates", opts.NumCandidates, "Number of candidate accounts to create")
	flag.IntVar(&opts.JobsPerMax, "jobs-per", opts.JobsPerMax, "Max jobs per recruiter")
	flag.IntVar(&opts.ApplyRate, "apply-rate", opts.ApplyRate, "Percent chance a candidate applies to a job")
	flag.BoolVar(&opts.ShouldClean, "clean", opts.ShouldClean, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	middleware.InitMiddleware(cfg)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. Seeded users have the password: password123")
}
