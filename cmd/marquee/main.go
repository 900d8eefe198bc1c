package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"marquee/internal/config"
	"marquee/internal/log"
	"marquee/internal/omdb"
	"marquee/internal/search"
	"marquee/internal/state"
	"marquee/internal/store"
	"marquee/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("marquee %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting marquee", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		return runSetupFlow()
	}

	// Open the user data store; degrade to memory-only on failure so a
	// locked or corrupt database never blocks the app.
	userData, err := store.NewUserDataStore(config.DataDir())
	if err != nil {
		logger.Warn("user data store unavailable, running memory-only", "error", err)
		userData, _ = store.NewUserDataStore("")
	}
	defer userData.Close()

	appState := state.NewStore(userData, cfg.UI.Theme, logger)

	catalog := omdb.NewClient(omdb.Config{
		BaseURL:   cfg.API.BaseURL,
		APIKey:    cfg.API.Key,
		Timeout:   cfg.API.RequestTimeout(),
		CacheTTL:  cfg.Cache.TTL(),
		CacheSize: cfg.Cache.MaxEntries,
	}, logger)

	searchSvc := search.NewService(catalog, appState, cfg.Search.Debounce(), logger)

	model := tui.NewModel(searchSvc, appState)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow handles the initial setup when no API key is configured
func runSetupFlow() error {
	fmt.Println()
	fmt.Println("Welcome to Marquee!")
	fmt.Println()
	fmt.Println("Marquee needs an OMDb API key (free at https://www.omdbapi.com/apikey.aspx).")
	fmt.Println()

	for {
		fmt.Print("Enter your OMDb API key: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		apiKey := strings.TrimSpace(string(raw))
		if apiKey == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}

		if err := config.SaveAPIKey(apiKey); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		break
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run marquee again to start the application.")

	return nil
}
