// Package ui implements the application's single settings panel: port and
// version selection, the beta toggle and the flash controls.
package ui
