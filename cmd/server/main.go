// Command server serves the recording lookup API.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
