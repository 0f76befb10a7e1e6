// Package db establishes database connections for the TechSouth
// server.
//
// The driver is picked from the connection string: postgres:// URLs use
// the Postgres driver, anything else is treated as a SQLite file path
// for local development.
package db
