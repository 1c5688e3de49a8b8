package main

import (
	"log"

	"github.com/lujan55/pilates/app/config"
	"github.com/lujan55/pilates/app/database"
)

func main() {
	log.Println("Starting manual migration...")

	config.LoadEnv()

	db, err := config.OpenDB()
	if err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	log.Println("Manual migration completed successfully!")
}
