// Package server wires the HTTP server: router, stores, middleware and
// the automation components the endpoints drive.
package server
