// Package usb provides utilities for inspecting USB host interfaces through
// the operating system's IO registry.
package usb

// USB interface class codes relevant to CDC-ACM devices. A CDC-ACM device
// registers a control interface and a data interface as siblings sharing the
// same registry name; only the data interface has a TTY device below it.
const (
	InterfaceClassCDCControl = 2
	InterfaceClassCDCData    = 10
)

// Entry is a single IO registry entry as decoded from a property list dump.
// Accessors never panic; a missing or mistyped field reads as absent.
type Entry map[string]interface{}

// Name returns the IORegistryEntryName of the entry.
func (e Entry) Name() string {
	name, _ := e.str("IORegistryEntryName")
	return name
}

// InterfaceClass returns the bInterfaceClass field.
func (e Entry) InterfaceClass() (int, bool) {
	return e.num("bInterfaceClass")
}

// TTYDevice returns the path of the TTY special file attached to this entry,
// or empty when the entry is not a serial endpoint.
func (e Entry) TTYDevice() string {
	tty, _ := e.str("IOTTYDevice")
	return tty
}

// Children returns the IORegistryEntryChildren of the entry. Elements that
// are not dictionaries are dropped.
func (e Entry) Children() []Entry {
	children, ok := e["IORegistryEntryChildren"].([]interface{})
	if !ok {
		return nil
	}
	var entries []Entry
	for _, child := range children {
		if childM, ok := child.(map[string]interface{}); ok {
			entries = append(entries, Entry(childM))
		}
	}
	return entries
}

func (e Entry) str(key string) (string, bool) {
	v, ok := e[key].(string)
	return v, ok
}

// num reads an integer field. The plist decoder produces uint64 for
// integers; int64 and int are accepted for values built in code.
func (e Entry) num(key string) (int, bool) {
	switch v := e[key].(type) {
	case uint64:
		return int(v), true
	case int64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}
