package main

import (
	"flag"
	"log"

	"github.com/helixerp/entitlements-backend/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "run database migrations")
	shouldRunServer := flag.Bool("server", false, "run the entitlements API server")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}

	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
}
