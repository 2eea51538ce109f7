// Package model contains the domain types shared across the application:
// firmware releases, flash jobs and their statuses.
package model
