// Package config provides configuration management for the TechSouth
// server.
//
// Configuration is loaded from a YAML file and overridden by
// environment variables, and every attribute remembers which source it
// came from so `techsouthctl configuration show` can display it.
//
// # Key Configuration Options
//
//   - DATABASE_URL: Database connection (postgres:// or sqlite file path)
//   - PORT: Server listen port
//   - OPENAI_API_KEY: Content generation API key
//   - TECHSOUTH_JWT_SECRET: Admin token signing secret
//   - TECHSOUTH_LOG_LEVEL: Logging verbosity
package config
