// Package main is the entry point for the library reservation API server.
// It wires together configuration, the in-memory store, the seed catalog,
// and the HTTP router.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/jaupventur/bertoti/internal/data"
)

// appVersion is the current version of the API, shown in logs.
const appVersion = "1.0.0"

// serverConfig holds all the values that can be tweaked at startup via
// command-line flags.
type serverConfig struct {
	port        int    // TCP port the HTTP server listens on (default 4000)
	environment string // Runtime environment: development, staging, or production
	limiter     struct {
		rps   float64 // Sustained requests per second allowed per client IP
		burst int     // Burst capacity per client IP
	}
}

// applicationDependencies bundles every shared resource that HTTP handlers
// need. A pointer to this struct is passed as the receiver on all handler
// and route methods.
type applicationDependencies struct {
	config serverConfig // Server configuration loaded from flags
	logger *slog.Logger // Structured logger that writes to stdout
	models data.Models  // Model layer over the in-memory store
}

// main parses flags, builds the store, loads the seed catalog, and starts
// the HTTP server.
func main() {
	var settings serverConfig

	flag.IntVar(&settings.port, "port", 4000, "Server port")
	flag.StringVar(&settings.environment, "env", "development", "Environment(development|staging|production)")
	flag.Float64Var(&settings.limiter.rps, "limiter-rps", 2, "Rate limiter requests per second per IP")
	flag.IntVar(&settings.limiter.burst, "limiter-burst", 4, "Rate limiter burst per IP")

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	appInstance := &applicationDependencies{
		config: settings,
		logger: logger,
		models: data.NewModels(),
	}

	// The catalog must be loaded before the first request is served.
	seed := seedCatalog()
	appInstance.models.Books.Load(seed)
	logger.Info("seed catalog loaded", "books", len(seed), "version", appVersion)

	err := appInstance.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// seedCatalog returns the four books the service has always started with.
// IDs are assigned by the store when the slice is loaded.
func seedCatalog() []*data.Book {
	date := func(year, month, day int) time.Time {
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}

	return []*data.Book{
		{Title: "A Arte da Guerra", Author: "Sun Tzu", Genre: "Estratégia", PublishedAt: date(1500, 1, 1), TotalCopies: 5},
		{Title: "Dom Quixote", Author: "Miguel de Cervantes", Genre: "Romance", PublishedAt: date(1605, 1, 1), TotalCopies: 3},
		{Title: "Crime e Castigo", Author: "Fiódor Dostoiévski", Genre: "Romance", PublishedAt: date(1866, 1, 1), TotalCopies: 2},
		{Title: "1984", Author: "George Orwell", Genre: "Ficção Científica", PublishedAt: date(1949, 6, 8), TotalCopies: 4},
	}
}
