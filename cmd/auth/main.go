// Command auth runs the longev-auth HTTP service: bearer-token issuance
// via password or emailed one-time passcode, plus signup and profile
// management. Configuration comes entirely from the environment.
package main

import (
	"log"

	"github.com/longevlabs/longev-auth/internal/auth/app"
)

func main() {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
