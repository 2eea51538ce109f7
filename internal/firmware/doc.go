// Package firmware downloads release artifacts and manages the local
// firmware directory the flashing step reads from.
package firmware
