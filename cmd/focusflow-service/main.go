package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/focusflow/focusflow/focusservice"
)

func main() {
	// Local development keeps FOCUSFLOW_* settings in a .env file.
	_ = godotenv.Load()

	if err := focusservice.Run(); err != nil {
		os.Exit(1)
	}
}
