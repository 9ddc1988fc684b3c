package usb

import (
	"fmt"
	"testing"

	"go.viam.com/test"
)

func iface(name string, class uint64, children ...interface{}) map[string]interface{} {
	m := map[string]interface{}{
		"IORegistryEntryName": name,
		"bInterfaceClass":     class,
	}
	if len(children) != 0 {
		m["IORegistryEntryChildren"] = children
	}
	return m
}

func withGrandchild(gc map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"IORegistryEntryName":     "AppleUSBACMData",
		"IOClass":                 "AppleUSBACMData",
		"IORegistryEntryChildren": []interface{}{gc},
	}
}

func ttyGrandchild(path string) map[string]interface{} {
	return map[string]interface{}{
		"IORegistryEntryName": "IOSerialBSDClient",
		"IOTTYDevice":         path,
	}
}

func TestFindTTY(t *testing.T) {
	acm0Control := iface("STM32 CDC ACM0", InterfaceClassCDCControl)
	acm0Data := iface("STM32 CDC ACM0", InterfaceClassCDCData,
		withGrandchild(ttyGrandchild("/dev/cu.usbmodem14203")))

	for i, tc := range []struct {
		Registry interface{}
		Name     string
		Expected string
	}{
		// control and data siblings share the name; only the data sibling
		// carries the TTY device
		{[]interface{}{acm0Control, acm0Data}, "STM32 CDC ACM0", "/dev/cu.usbmodem14203"},
		{[]interface{}{acm0Control, acm0Data}, "Nonexistent Device", ""},

		// exact match required
		{[]interface{}{acm0Data}, "stm32 cdc acm0", ""},
		{[]interface{}{acm0Data}, "STM32 CDC ACM0 ", ""},
		{[]interface{}{acm0Data}, " STM32 CDC ACM0", ""},

		// matching name but only a control-class interface
		{[]interface{}{
			iface("STM32 CDC ACM0", InterfaceClassCDCControl,
				withGrandchild(ttyGrandchild("/dev/cu.usbmodem14203"))),
		}, "STM32 CDC ACM0", ""},

		// data interface with no TTY anywhere below it
		{[]interface{}{
			iface("STM32 CDC ACM0", InterfaceClassCDCData,
				withGrandchild(map[string]interface{}{"IORegistryEntryName": "IOSerialBSDClient"})),
		}, "STM32 CDC ACM0", ""},

		// empty IOTTYDevice does not count as a hit
		{[]interface{}{
			iface("STM32 CDC ACM0", InterfaceClassCDCData,
				withGrandchild(ttyGrandchild(""))),
		}, "STM32 CDC ACM0", ""},

		// non-dict entries are skipped, later entries still searched
		{[]interface{}{5, "junk", acm0Data}, "STM32 CDC ACM0", "/dev/cu.usbmodem14203"},

		// first hit wins across siblings and grandchildren
		{[]interface{}{
			iface("STM32 CDC ACM0", InterfaceClassCDCData,
				withGrandchild(ttyGrandchild("/dev/cu.usbmodem14203")),
				withGrandchild(ttyGrandchild("/dev/cu.usbmodem14204"))),
		}, "STM32 CDC ACM0", "/dev/cu.usbmodem14203"},

		// missing class field is not a data interface
		{[]interface{}{
			map[string]interface{}{
				"IORegistryEntryName":     "STM32 CDC ACM0",
				"IORegistryEntryChildren": []interface{}{withGrandchild(ttyGrandchild("/dev/cu.usbmodem14203"))},
			},
		}, "STM32 CDC ACM0", ""},

		{[]interface{}{}, "STM32 CDC ACM0", ""},
	} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			tty, err := FindTTY(tc.Registry, tc.Name)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, tty, test.ShouldEqual, tc.Expected)
		})
	}
}

func TestFindTTYTopLevelNotAList(t *testing.T) {
	for i, pl := range []interface{}{
		nil,
		5,
		map[string]interface{}{"IORegistryEntryName": "STM32 CDC ACM0"},
	} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			tty, err := FindTTY(pl, "STM32 CDC ACM0")
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, "expected a list")
			test.That(t, tty, test.ShouldEqual, "")
		})
	}
}

func TestFindTTYFirstDataSiblingWins(t *testing.T) {
	registry := []interface{}{
		iface("STM32 CDC ACM0", InterfaceClassCDCData,
			withGrandchild(ttyGrandchild("/dev/cu.usbmodem11111"))),
		iface("STM32 CDC ACM0", InterfaceClassCDCData,
			withGrandchild(ttyGrandchild("/dev/cu.usbmodem22222"))),
	}
	tty, err := FindTTY(registry, "STM32 CDC ACM0")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tty, test.ShouldEqual, "/dev/cu.usbmodem11111")
}
