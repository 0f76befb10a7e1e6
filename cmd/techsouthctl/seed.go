package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/CryptoTanAI/TechBlog/pkg/db"
	"github.com/CryptoTanAI/TechBlog/pkg/model"
	"github.com/CryptoTanAI/TechBlog/pkg/server/store"
	storegorm "github.com/CryptoTanAI/TechBlog/pkg/server/store/gorm"
)

//go:embed seed.yml
var defaultSeedData []byte

// seedFile is the YAML document consumed by the seed commands.
type seedFile struct {
	Countries []struct {
		Name         string  `yaml:"name"`
		Code         string  `yaml:"code"`
		Region       string  `yaml:"region"`
		FlagURL      string  `yaml:"flag_url"`
		Population   int64   `yaml:"population"`
		GDPUSD       int64   `yaml:"gdp_usd"`
		GDPPerCapita float64 `yaml:"gdp_per_capita"`
	} `yaml:"countries"`
	Technologies []struct {
		Name        string `yaml:"name"`
		Category    string `yaml:"category"`
		Description string `yaml:"description"`
	} `yaml:"technologies"`
	Settings []struct {
		Key         string `yaml:"key"`
		Value       string `yaml:"value"`
		Description string `yaml:"description"`
	} `yaml:"settings"`
	Admin struct {
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
	} `yaml:"admin"`
}

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Load reference data into the database",
	Long: `Load reference data into the database.

Upserts countries, technologies and automation settings from the
built-in seed data, or from a YAML file if one is given. Existing rows
are updated by name (or key), so re-running is safe and setting values
changed through the admin API are preserved.

If the TECHSOUTH_ADMIN_PASSWORD environment variable is set, an admin
user is created (or its password reset) as well.

Example:
  techsouthctl seed
  techsouthctl seed custom-data.yml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data := defaultSeedData
		if len(args) > 0 {
			var err error
			data, err = os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to read seed file: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		if err := applySeed(database, data); err != nil {
			fmt.Fprintf(os.Stderr, "Seeding failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func applySeed(database *gorm.DB, data []byte) error {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed data: %w", err)
	}

	countries := storegorm.NewCountriesStore(database)
	for _, c := range seed.Countries {
		err := countries.Upsert(&model.Country{
			Name:         c.Name,
			Code:         c.Code,
			Region:       c.Region,
			FlagURL:      c.FlagURL,
			Population:   c.Population,
			GDPUSD:       c.GDPUSD,
			GDPPerCapita: c.GDPPerCapita,
		})
		if err != nil {
			return fmt.Errorf("failed to seed country %q: %w", c.Name, err)
		}
	}
	fmt.Printf("Seeded %d countries\n", len(seed.Countries))

	technologies := storegorm.NewTechnologiesStore(database)
	for _, t := range seed.Technologies {
		err := technologies.Upsert(&model.Technology{
			Name:        t.Name,
			Category:    t.Category,
			Description: t.Description,
		})
		if err != nil {
			return fmt.Errorf("failed to seed technology %q: %w", t.Name, err)
		}
	}
	fmt.Printf("Seeded %d technologies\n", len(seed.Technologies))

	settings := storegorm.NewSettingsStore(database)
	for _, s := range seed.Settings {
		err := settings.Upsert(&model.Setting{
			Key:         s.Key,
			Value:       s.Value,
			Description: s.Description,
			IsActive:    true,
		})
		if err != nil {
			return fmt.Errorf("failed to seed setting %q: %w", s.Key, err)
		}
	}
	fmt.Printf("Seeded %d settings\n", len(seed.Settings))

	if password, ok := os.LookupEnv("TECHSOUTH_ADMIN_PASSWORD"); ok && seed.Admin.Username != "" {
		if err := seedAdminUser(database, seed.Admin.Username, seed.Admin.Email, password); err != nil {
			return err
		}
		fmt.Printf("Seeded admin user %q\n", seed.Admin.Username)
	} else {
		fmt.Println("TECHSOUTH_ADMIN_PASSWORD not set, skipping admin user")
	}

	return nil
}

func seedAdminUser(database *gorm.DB, username, email, password string) error {
	users := storegorm.NewUsersStore(database)

	user, err := users.GetByUsername(username)
	if errors.Is(err, store.ErrUserNotFound) {
		user = &model.User{Username: username, Email: email}
		if err := user.SetPassword(password); err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		return users.Create(user)
	}
	if err != nil {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	if email != "" {
		user.Email = email
	}
	if err := user.SetPassword(password); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	return users.Update(user)
}
