package main

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/jessevdk/go-flags"
	"github.com/schollz/progressbar/v3"
)

type ExtractCmd struct {
	Exclude  []string `short:"x" long:"exclude" description:"exclude entries"`
	Progress bool     `long:"progress" description:"show progress bar"`
	Args     struct {
		File flags.Filename `positional-arg-name:"file" description:"ZIP file to extract"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd *ExtractCmd) Execute(args []string) (err error) {
	init_log()
	ar, err := OpenArchive(string(cmd.Args.File))
	if err != nil {
		slog.Error("open archive", "name", cmd.Args.File, "error", err)
		return err
	}
	defer ar.Close()
	printInfo(ar)
	entries := ar.Entries()
	var bar *progressbar.ProgressBar
	if cmd.Progress {
		bar = progressbar.Default(int64(len(entries)), string(cmd.Args.File))
		defer bar.Close()
	}
	for _, entry := range entries {
		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.Error("progressbar error", "error", err)
				bar = nil
			}
		}
		if ismatch(entry.Name(), cmd.Exclude) {
			continue
		}
		fmt.Printf("Extracting %s\n", entry.Name())
		contents, err := entry.ReadAll(ar.sectionAt)
		if err != nil {
			slog.Error("extract", "name", entry.Name(), "error", err)
			return err
		}
		if utf8.Valid(contents) {
			fmt.Printf("contents = %q\n", contents)
		} else {
			fmt.Printf("contents = %v\n", contents)
		}
	}
	return nil
}
