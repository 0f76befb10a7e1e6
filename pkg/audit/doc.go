// Package audit provides audit logging for the TechSouth server.
//
// Events are written to stdout in RFC5424 syslog format and optionally
// persisted to a database when AUDIT_DATABASE_URL is set. The admin
// automation log endpoint reads persisted events back out of the store.
package audit
