package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CryptoTanAI/TechBlog/pkg/config"
	"github.com/CryptoTanAI/TechBlog/pkg/db"
	"github.com/CryptoTanAI/TechBlog/pkg/server"
	"github.com/CryptoTanAI/TechBlog/pkg/server/endpoints"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the TechSouth application server",
	Long: `Run the TechSouth application server.

Requires the DATABASE_URL environment variable. Content generation
additionally needs OPENAI_API_KEY; without it generated posts fall back
to placeholder drafts.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{URL: cfg.DatabaseURL})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		host, _ := cmd.Flags().GetString("bind-address")
		s := server.NewServer(database, cfg, host)

		endpoints.RegisterAll(s)

		noScheduler, _ := cmd.Flags().GetBool("no-scheduler")
		if !noScheduler {
			if err := s.Scheduler.Start(); err != nil {
				fmt.Fprintln(os.Stderr, "Unable to start scheduler:", err)
				os.Exit(1)
			}
		}

		// SIGHUP (sent by `techsouthctl configuration apply`) reloads
		// the configuration sources
		reload := make(chan os.Signal, 1)
		signal.Notify(reload, syscall.SIGHUP)
		go func() {
			for range reload {
				if err := config.Reload(); err != nil {
					log.Printf("Configuration reload failed: %v", err)
					continue
				}
				log.Println("Configuration reloaded")
			}
		}()

		log.Printf("Running server at http://%s:%d...\n", host, cfg.Port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serverCmd.Flags().Bool("no-scheduler", false, "do not start the automation scheduler")
}
