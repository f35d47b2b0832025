package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"concentribe/internal/auth"
	"concentribe/internal/config"
	"concentribe/internal/database"
	"concentribe/internal/games"
	"concentribe/internal/insights"
	"concentribe/internal/llm"
	"concentribe/internal/news"
	"concentribe/internal/server"
	"concentribe/internal/videos"
)

var version = "dev"

// demoPassword is the login of the seeded demo account.
const demoPassword = "password"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "concentribe",
	Short:   "Distraction-free news aggregation",
	Long:    "ConcenTribe aggregates news with AI insights, focus sessions, mind games, and communities.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		} else {
			log.SetFlags(log.LstdFlags)
		}

		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(serveCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("concentribe", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/concentribe/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to configure feeds, API keys, and the AI provider.")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database and system status",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats()
		if err != nil {
			return fmt.Errorf("getting stats: %w", err)
		}

		fmt.Printf("Database: %s\n\n", db.Path())
		fmt.Println("Content:")
		fmt.Printf("  Articles cached: %d\n", stats.Articles)
		fmt.Printf("  Games stored: %d\n", stats.Games)
		fmt.Println("\nPeople:")
		fmt.Printf("  Users: %d\n", stats.Users)
		fmt.Printf("  Bookmarks: %d\n", stats.Bookmarks)
		fmt.Printf("  Badges: %d\n", stats.Badges)
		fmt.Println("\nCommunities:")
		fmt.Printf("  Communities: %d\n", stats.Communities)
		fmt.Printf("  Posts: %d\n", stats.Posts)
		return nil
	},
}

// --- collect command ---

var daysBack int

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect articles from configured RSS feeds into the cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		feeds := make([]news.Feed, 0, len(cfg.Sources.Feeds))
		for _, f := range cfg.Sources.Feeds {
			feeds = append(feeds, news.Feed{URL: f.URL, Name: f.Name, Category: f.Category})
		}
		if len(feeds) == 0 {
			fmt.Println("No feeds configured. Add some under sources.feeds in the config.")
			return nil
		}

		fmt.Printf("Collecting from %d feeds...\n", len(feeds))
		collector := news.NewCollector(db, feeds)
		added := collector.CollectAll(daysBack)
		fmt.Printf("Collected %d new articles.\n", added)

		fmt.Println("Backfilling article content...")
		fetcher := news.NewContentFetcher(db, 20*time.Second)
		result := fetcher.FetchMissingContent()
		fmt.Printf("Content fetched for %d articles (%d failed).\n", result.Fetched, result.Failed)
		return nil
	},
}

func init() {
	collectCmd.Flags().IntVar(&daysBack, "days-back", 1, "How many days of feed history to keep")
}

// --- serve command ---

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		demoHash, err := auth.HashPassword(demoPassword)
		if err != nil {
			return fmt.Errorf("hashing demo password: %w", err)
		}
		if err := db.Seed(demoHash); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}

		gamesSvc := games.NewService(db)
		if err := gamesSvc.SeedDefaults(); err != nil {
			return fmt.Errorf("seeding games: %w", err)
		}

		client := news.NewClient(cfg.News.APIKeyEnv, cfg.News.Country, "")
		newsSvc := news.NewService(db, client, cfg.News.PageSize)

		provider := llm.CreateProvider(cfg.AI.Provider, cfg.AI.Model,
			cfg.AI.OllamaURL, cfg.AI.OpenAIModel, cfg.AI.APIKeyEnv)
		gen := insights.NewGenerator(provider, newsSvc, cfg.AI.MaxTokens)

		videoClient := videos.NewClient(cfg.Videos.APIKeyEnv, "")
		google := auth.NewGoogleAuth(db, cfg.Auth.GoogleIDEnv, cfg.Auth.GoogleSecretEnv,
			cfg.Auth.CallbackBaseURL+"/auth/google/callback")

		srv := server.New(db, newsSvc, gen, gamesSvc, videoClient, google)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}
		fmt.Printf("Starting server at http://localhost:%d\n", port)
		fmt.Println("Press Ctrl+C to stop")
		return http.ListenAndServe(fmt.Sprintf(":%d", port), srv.Handler())
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to run server on (defaults to config)")
}

func openDB() (*database.DB, error) {
	dataDir := cfg.GetDataDir()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	dbPath := filepath.Join(dataDir, "concentribe.db")
	return database.Open(dbPath)
}
