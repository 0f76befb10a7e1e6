// Package gorm implements the store interfaces on top of GORM.
package gorm
