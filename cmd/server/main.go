// Command server runs the conjugation API: it loads the verb dataset,
// processes every verb, and serves the catalog, health, and on-demand
// example-generation endpoints.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"

	"github.com/kartuli-app/kartuli-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
