// Package main provides techsouthctl, the CLI for the TechSouth content
// platform.
//
// TechSouth is a content-management backend for a blog covering technology
// adoption in the Global South. It serves a REST API over a relational
// datastore and runs a scheduled automation pipeline that drafts posts via a
// chat-completion API, scores them against a quality threshold, and publishes
// or drafts them accordingly.
//
// # Architecture
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: storage interfaces and GORM implementations
//   - pkg/automation: country/technology selection, generation, scheduling
//   - pkg/social: social share formatting and scheduling
//   - pkg/newsletter: subscriber welcome mail
//   - pkg/openai: chat-completion client
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/audit: audit logging
//   - pkg/config: configuration management
//
// # Quick Start
//
//	# Run database migrations
//	techsouthctl db migrate
//
//	# Seed countries, technologies, settings and the admin user
//	techsouthctl seed
//
//	# Start the server
//	techsouthctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL or sqlite:// connection string
//   - OPENAI_API_KEY: chat-completion API key
//   - TECHSOUTH_JWT_SECRET: HMAC secret for admin tokens
//   - TECHSOUTH_ADMIN_PASSWORD: initial admin password for seeding
//   - PORT: Server port (default: 5000)
//   - BIND_ADDRESS: Server bind address (default: 0.0.0.0)
//   - EMAIL_ADDRESS, EMAIL_PASSWORD: SMTP credentials for welcome mail
package main
