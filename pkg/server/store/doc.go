// Package store defines the storage interfaces used by the API
// endpoints and the automation pipeline. Implementations live in the
// gorm subpackage; tests substitute mocks.
package store
