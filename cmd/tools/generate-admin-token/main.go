package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/komachi-dev/komachi/internal/config"
	"github.com/komachi-dev/komachi/internal/jwt"
)

// Mints a bearer token for the admin provisioning endpoints. The operator
// proves knowledge of the admin password (checked against the bcrypt hash
// in private.yaml) and receives a signed token with the configured TTL.
func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	if cfg.Private.AdminPasswordHash == "" {
		log.Fatal("admin_password_hash is not set in private.yaml")
	}

	fmt.Fprint(os.Stderr, "Admin password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	password = strings.TrimRight(password, "\r\n")

	if err := bcrypt.CompareHashAndPassword([]byte(cfg.Private.AdminPasswordHash), []byte(password)); err != nil {
		log.Fatal("Wrong admin password")
	}

	token, err := jwt.New(cfg.JwtKey(), cfg.AdminTokenTTL()).NewAdminToken()
	if err != nil {
		log.Fatalf("Failed to mint token: %v", err)
	}

	fmt.Println(token)
}
