// Package platform provides system-level helpers: serial port
// enumeration and filesystem utilities.
package platform
