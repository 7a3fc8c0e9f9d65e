package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jessevdk/go-flags"
)

const nameColumnWidth = 55

type ListCmd struct {
	Verbose bool     `short:"v" long:"verbose" description:"show verbose information for each entry"`
	Exclude []string `short:"x" long:"exclude" description:"exclude entries"`
	Args    struct {
		File flags.Filename `positional-arg-name:"file" description:"ZIP file to list"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd *ListCmd) Execute(args []string) (err error) {
	init_log()
	ar, err := OpenArchive(string(cmd.Args.File))
	if err != nil {
		slog.Error("open archive", "name", cmd.Args.File, "error", err)
		return err
	}
	defer ar.Close()
	return cmd.list(ar, os.Stdout)
}

func (cmd *ListCmd) list(ar *Archive, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprint(tw, "Mode\tName\tSize")
	if cmd.Verbose {
		fmt.Fprint(tw, "\tModified\tUID\tGID")
	}
	fmt.Fprintln(tw)
	for _, entry := range ar.Entries() {
		if ismatch(entry.Name(), cmd.Exclude) {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s",
			entry.Mode(),
			TruncatePath(entry.Name(), nameColumnWidth),
			humanSize(entry.UncompressedSize()))
		if cmd.Verbose {
			uid, uok := entry.UID()
			gid, gok := entry.GID()
			fmt.Fprintf(tw, "\t%s\t%s\t%s",
				entry.Modified().UTC().Format(time.RFC3339),
				optionalID(uid, uok), optionalID(gid, gok))
			if entry.Kind() == KindSymlink {
				target, err := entry.ReadAll(ar.sectionAt)
				if err != nil {
					slog.Error("symlink target", "name", entry.Name(), "error", err)
					return err
				}
				fmt.Fprintf(tw, "\t%s", string(target))
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
