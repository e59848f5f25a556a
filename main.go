package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vietanh2810/raffle-api/cmd/app"
)

// @title        Raffle API
// @version      1.0
// @description  Ticket carts, order settlement and statistics for association raffles.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token returned by /auth/login
func main() {
	if err := app.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "raffle-api: %v\n", err)
		os.Exit(1)
	}
}
