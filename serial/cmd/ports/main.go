// Package main contains a command to list serial ports whose description
// matches a substring.
package main

import (
	"context"
	"os"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/utils"

	"github.com/dukov777/composite-serial-port/serial"
)

var logger = golog.NewDevelopmentLogger("serial_ports")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

// Arguments for the command.
type Arguments struct {
	Filter string `flag:"filter,default=STM32,usage=substring to match against the port description"`
	All    bool   `flag:"all,usage=list every port regardless of description"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}

	filter := serial.SearchFilter{Description: argsParsed.Filter}
	if argsParsed.All {
		filter = serial.SearchFilter{}
	}

	descs, err := serial.Search(filter)
	if err != nil {
		return errors.Wrap(err, "enumerate serial ports")
	}
	if len(descs) == 0 {
		logger.Infow("no matching serial ports found", "filter", filter.Description)
		return nil
	}
	logger.Infow("found matching serial ports", "count", len(descs))
	serial.WritePorts(os.Stdout, descs)
	return nil
}
