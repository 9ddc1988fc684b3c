package usb

import (
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"howett.net/plist"
)

// HostInterfaceClass is the IO registry class enumerated by these tools.
const HostInterfaceClass = "IOUSBHostInterface"

// RegistryCmd dumps the IO registry for the given object class in property
// list form; it is normally ioreg. It's a variable in case you need to
// override it during tests.
var RegistryCmd = func(ioObjectClass string) ([]byte, error) {
	cmd := exec.Command("ioreg", "-a", "-r", "-l", "-w0", "-c", ioObjectClass)
	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrap(err, "ioreg")
	}
	return out, nil
}

// HostInterfaces runs the registry dump command for USB host interfaces and
// decodes its output.
func HostInterfaces() (interface{}, error) {
	out, err := RegistryCmd(HostInterfaceClass)
	if err != nil {
		return nil, err
	}
	return decodeRegistry(out)
}

// ReadRegistryFile decodes a previously captured registry dump from a file.
// Both XML and binary property lists are accepted.
func ReadRegistryFile(path string) (_ interface{}, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return decodeRegistry(data)
}

func decodeRegistry(out []byte) (interface{}, error) {
	var pl interface{}
	if _, err := plist.Unmarshal(out, &pl); err != nil {
		return nil, errors.Wrap(err, "decode registry property list")
	}
	return pl, nil
}
