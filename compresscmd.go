package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jessevdk/go-flags"
)

var errNotImplemented = errors.New("compress is not implemented")

type CompressCmd struct {
	Output flags.Filename `short:"o" long:"output" required:"yes" description:"path of the zip file to create"`
	Args   struct {
		Files []flags.Filename `positional-arg-name:"files" required:"1" description:"files to add to the archive"`
	} `positional-args:"yes"`
}

func (cmd *CompressCmd) Execute(args []string) error {
	init_log()
	fmt.Printf("Should add %v to archive %s\n", cmd.Args.Files, cmd.Output)
	slog.Error("not supported", "error", errNotImplemented)
	return errNotImplemented
}
