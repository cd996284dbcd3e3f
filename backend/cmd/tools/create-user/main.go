package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/crypto"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/jwt"
	"github.com/itchan-dev/forum/shared/storage"
)

// create-user registers a user directly in the database and prints a bearer
// token for it. Account management is not part of the API.
func main() {
	var configFolder, username, password, fullname string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&username, "username", "", "username (required)")
	flag.StringVar(&password, "password", "", "password (required)")
	flag.StringVar(&fullname, "fullname", "", "full name")
	flag.Parse()

	if username == "" || password == "" {
		flag.Usage()
		log.Fatal("username and password are required")
	}

	cfg := config.MustLoad(configFolder)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := storage.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Cleanup()

	hash, err := crypto.HashPassword(password)
	if err != nil {
		log.Fatal(err)
	}

	id, err := store.SaveUser(ctx, domain.User{Username: username, Password: hash, Fullname: fullname})
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	token, err := jwt.New(cfg.JwtKey(), cfg.JwtTTL()).NewToken(domain.Caller{Id: id, Username: username})
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Printf("Created user %s (%s)\n", username, id)
	fmt.Printf("Authorization: Bearer %s\n", token)
}
