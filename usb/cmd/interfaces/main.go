// Package main contains a command to inspect USB host interfaces and resolve
// their TTY devices.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/edaniels/golog"
	"go.viam.com/utils"

	"github.com/dukov777/composite-serial-port/usb"
)

var logger = golog.NewDevelopmentLogger("usb_interfaces")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

// Arguments for the command.
type Arguments struct {
	InterfaceName string `flag:"0,usage=interface name to resolve to a TTY device"`
	List          bool   `flag:"list,usage=list every USB host interface with its details"`
	ListShort     bool   `flag:"l,usage=shorthand for -list"`
	Debug         string `flag:"debug,usage=read a captured registry plist from the given file instead of running ioreg"`
	JSON          bool   `flag:"json,usage=emit the decoded registry as JSON"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}

	var pl interface{}
	var err error
	if argsParsed.Debug != "" {
		logger.Infow("loading registry from file", "path", argsParsed.Debug)
		pl, err = usb.ReadRegistryFile(argsParsed.Debug)
	} else {
		logger.Info("getting registry data from ioreg")
		pl, err = usb.HostInterfaces()
	}
	if err != nil {
		logger.Errorw("failed to read the io registry", "error", err)
		return nil
	}
	if list, ok := pl.([]interface{}); ok && len(list) == 0 {
		logger.Info("no data to process")
		return nil
	}

	if argsParsed.JSON {
		out, err := usb.MarshalReport(pl)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if argsParsed.List || argsParsed.ListShort || argsParsed.InterfaceName == "" {
		if err := usb.WriteReport(os.Stdout, pl); err != nil {
			logger.Errorw("failed to report interfaces", "error", err)
		}
		return nil
	}

	tty, err := usb.FindTTY(pl, argsParsed.InterfaceName)
	if err != nil {
		logger.Errorw("failed to search interfaces", "error", err)
		return nil
	}
	if tty == "" {
		logger.Infow("no TTY device found", "interface", argsParsed.InterfaceName)
		return nil
	}
	fmt.Printf("TTY device for %s: %s\n", argsParsed.InterfaceName, tty)
	logger.Infow("resolved TTY device", "interface", argsParsed.InterfaceName, "path", tty)
	return nil
}
