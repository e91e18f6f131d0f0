package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/lazypower/metacog/internal/cli"
)

func main() {
	// A workspace .env may set METACOG_WORKSPACE; missing is fine.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
