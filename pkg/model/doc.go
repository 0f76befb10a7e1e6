// Package model contains the GORM database models for the TechSouth
// content platform: reference data (countries, technologies), blog posts
// and their media assets, social shares, newsletter subscribers, admin
// users and the key/value automation settings.
package model
