package main

import "github.com/joho/godotenv"

func main() {
	// Optional .env for MAL_CLIENT_ID and friends.
	_ = godotenv.Load()
	Execute()
}
