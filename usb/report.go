package usb

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

const unknown = "Unknown"

// WriteReport prints a human-readable report of every interface in the
// registry dump, in original order. Missing fields render as "Unknown".
// List elements that are not dictionaries are reported by index with their
// actual type rather than skipped.
func WriteReport(w io.Writer, pl interface{}) error {
	list, ok := pl.([]interface{})
	if !ok {
		return errors.Errorf("expected a list at the top level, got %T", pl)
	}
	fmt.Fprintf(w, "Found %d USB interfaces\n", len(list))
	for i, elem := range list {
		iface, ok := elem.(map[string]interface{})
		if !ok {
			fmt.Fprintf(w, "\nInterface #%d is not a dictionary, it's a %T\n", i+1, elem)
			continue
		}
		entry := Entry(iface)
		fmt.Fprintf(w, "\n--- USB Interface #%d ---\n", i+1)
		fmt.Fprintf(w, "Name: %s\n", entry.display("IORegistryEntryName"))
		fmt.Fprintf(w, "Class: %s\n", entry.display("bInterfaceClass"))
		fmt.Fprintf(w, "SubClass: %s\n", entry.display("bInterfaceSubClass"))
		fmt.Fprintf(w, "Protocol: %s\n", entry.display("bInterfaceProtocol"))
		if product, ok := entry.str("USB Product Name"); ok {
			fmt.Fprintf(w, "Product: %s\n", product)
		}
		if vendor, ok := entry.str("USB Vendor Name"); ok {
			fmt.Fprintf(w, "Vendor: %s\n", vendor)
		}
		if serial, ok := entry.str("USB Serial Number"); ok {
			fmt.Fprintf(w, "Serial: %s\n", serial)
		}
		fmt.Fprintf(w, "Vendor ID: %s\n", entry.display("idVendor"))
		fmt.Fprintf(w, "Product ID: %s\n", entry.display("idProduct"))
		fmt.Fprintf(w, "Location ID: %s\n", entry.display("locationID"))
		writeChildren(w, entry)
	}
	return nil
}

func writeChildren(w io.Writer, entry Entry) {
	children, ok := entry["IORegistryEntryChildren"].([]interface{})
	if !ok || len(children) == 0 {
		return
	}
	fmt.Fprintf(w, "\n  Children (%d):\n", len(children))
	for j, elem := range children {
		childM, ok := elem.(map[string]interface{})
		if !ok {
			fmt.Fprintf(w, "  Child #%d is not a dictionary\n", j+1)
			continue
		}
		child := Entry(childM)
		fmt.Fprintf(w, "  - Child #%d: %s (Class: %s)\n",
			j+1, child.display("IORegistryEntryName"), child.display("IOClass"))
		grandchildren, ok := childM["IORegistryEntryChildren"].([]interface{})
		if !ok || len(grandchildren) == 0 {
			continue
		}
		fmt.Fprintf(w, "    Grandchildren (%d):\n", len(grandchildren))
		for k, gcElem := range grandchildren {
			gcM, ok := gcElem.(map[string]interface{})
			if !ok {
				continue
			}
			gc := Entry(gcM)
			if tty := gc.TTYDevice(); tty != "" {
				fmt.Fprintf(w, "    - #%d: %s (TTY: %s)\n", k+1, gc.display("IORegistryEntryName"), tty)
			} else {
				fmt.Fprintf(w, "    - #%d: %s\n", k+1, gc.display("IORegistryEntryName"))
			}
		}
	}
}

// display renders a report field, defaulting missing or unexpected values to
// "Unknown".
func (e Entry) display(key string) string {
	if v, ok := e.str(key); ok {
		return v
	}
	if v, ok := e.num(key); ok {
		return strconv.Itoa(v)
	}
	return unknown
}

// MarshalReport renders the decoded registry dump as indented JSON.
func MarshalReport(pl interface{}) ([]byte, error) {
	out, err := json.MarshalIndent(pl, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encode registry as JSON")
	}
	return out, nil
}
