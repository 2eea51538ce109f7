package platform

import (
	"sort"

	"github.com/sirupsen/logrus"
	"go.bug.st/serial"
)

// ListSerialPorts returns the serial ports present on the system, sorted.
// Enumeration failure degrades to an empty list so the port selection can
// still render with no options.
func ListSerialPorts() []string {
	ports, err := serial.GetPortsList()
	if err != nil {
		logrus.Warnf("Serial port enumeration failed: %v", err)
		return nil
	}

	sort.Strings(ports)
	return ports
}
