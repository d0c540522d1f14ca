package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Angel-Lizarzado/Transporte/app/config"
	"github.com/Angel-Lizarzado/Transporte/app/database"
	"github.com/Angel-Lizarzado/Transporte/app/models"
)

// bootstrap creates the first admin user together with its organization,
// membership and default app config.
func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "", "admin full name")
	orgName := flag.String("org", "Transporte Escolar", "organization name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("email and password are required")
	}

	if err := config.Init(); err != nil {
		log.Fatal(err)
	}
	db := config.GetDB()
	defer db.Close()

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), 14)
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}

	user := &models.User{Email: *email, Password: string(hashed)}
	if *name != "" {
		user.FullName = name
	}

	org, err := database.RegisterOwner(db, user, *orgName)
	if err != nil {
		log.Fatal("failed to bootstrap: ", err)
	}

	fmt.Printf("User created successfully: %s (organization %s / %s)\n", user.Email, org.Name, org.ID)
}
