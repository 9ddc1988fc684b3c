// Package serial provides utilities for searching for and working with
// serial based devices.
package serial

import (
	"fmt"
	"io"
	"strings"

	"go.bug.st/serial/enumerator"
)

// Description is the fixed set of fields exposed for an enumerable serial
// port. Fields the platform does not report are left empty.
type Description struct {
	Path         string
	Description  string
	HardwareID   string
	Manufacturer string
	SerialNumber string
	VendorID     string
	ProductID    string
}

// SearchFilter describes which ports Search should return. An empty filter
// matches every port.
type SearchFilter struct {
	// Description must appear as-is in the port's description; matching is
	// case sensitive.
	Description string
}

// Enumerate returns the platform's detailed serial port list. It's a
// variable in case you need to override it during tests.
var Enumerate = func() ([]*enumerator.PortDetails, error) {
	return enumerator.GetDetailedPortsList()
}

// Search returns all serial ports matching the given filter, in enumeration
// order.
func Search(filter SearchFilter) ([]Description, error) {
	ports, err := Enumerate()
	if err != nil {
		return nil, err
	}
	var results []Description
	for _, port := range ports {
		desc := describe(port)
		if filter.Description != "" && !strings.Contains(desc.Description, filter.Description) {
			continue
		}
		results = append(results, desc)
	}
	return results, nil
}

func describe(port *enumerator.PortDetails) Description {
	desc := Description{
		Path:        port.Name,
		Description: port.Product,
	}
	if port.IsUSB {
		desc.HardwareID = fmt.Sprintf("USB VID:PID=%s:%s SER=%s", port.VID, port.PID, port.SerialNumber)
		desc.SerialNumber = port.SerialNumber
		desc.VendorID = port.VID
		desc.ProductID = port.PID
	}
	return desc
}

// WritePorts prints one block per port covering every Description field.
func WritePorts(w io.Writer, descs []Description) {
	for _, desc := range descs {
		fmt.Fprintf(w, "%s - %s\n", desc.Path, desc.Description)
		fmt.Fprintf(w, "  device: %s\n", desc.Path)
		fmt.Fprintf(w, "  description: %s\n", desc.Description)
		fmt.Fprintf(w, "  hwid: %s\n", desc.HardwareID)
		fmt.Fprintf(w, "  manufacturer: %s\n", desc.Manufacturer)
		fmt.Fprintf(w, "  serial_number: %s\n", desc.SerialNumber)
		fmt.Fprintf(w, "  vid: %s\n", desc.VendorID)
		fmt.Fprintf(w, "  pid: %s\n", desc.ProductID)
		fmt.Fprintln(w)
	}
}
