package main

import (
	"log"

	"github.com/Angel-Lizarzado/Transporte/app/config"
	"github.com/Angel-Lizarzado/Transporte/app/database"
)

func main() {
	log.Println("Starting manual migration...")

	if err := config.Init(); err != nil {
		log.Fatal(err)
	}
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	log.Println("Manual migration completed successfully!")
}
