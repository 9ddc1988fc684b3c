package usb

import "github.com/pkg/errors"

// FindTTY resolves the TTY device path registered under the named USB host
// interface. The name must match IORegistryEntryName exactly. Only data
// interfaces (bInterfaceClass 10) are descended into; the control-class
// sibling a CDC-ACM device registers under the same name never carries the
// TTY device. The first non-empty IOTTYDevice found two levels below a
// qualifying interface wins.
//
// A miss returns ("", nil); an error is returned only when pl is not the
// top-level interface list.
func FindTTY(pl interface{}, name string) (string, error) {
	list, ok := pl.([]interface{})
	if !ok {
		return "", errors.Errorf("expected a list at the top level, got %T", pl)
	}
	for _, elem := range list {
		iface, ok := elem.(map[string]interface{})
		if !ok {
			continue
		}
		entry := Entry(iface)
		if entry.Name() != name {
			continue
		}
		if class, ok := entry.InterfaceClass(); !ok || class != InterfaceClassCDCData {
			continue
		}
		for _, child := range entry.Children() {
			for _, gc := range child.Children() {
				if tty := gc.TTYDevice(); tty != "" {
					return tty, nil
				}
			}
		}
	}
	return "", nil
}
