package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jessevdk/go-flags"
)

type InfoCmd struct {
	Args struct {
		File flags.Filename `positional-arg-name:"file" description:"ZIP file to analyze"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd *InfoCmd) Execute(args []string) (err error) {
	init_log()
	ar, err := OpenArchive(string(cmd.Args.File))
	if err != nil {
		slog.Error("open archive", "name", cmd.Args.File, "error", err)
		return err
	}
	defer ar.Close()
	printInfo(ar)
	return nil
}

// printInfo renders the aggregation result. Shared by info and extract.
func printInfo(ar *Archive) {
	if comment := ar.Comment(); comment != "" {
		fmt.Printf("Comment:\n%s\n", comment)
	}
	stats := Aggregate(ar.Entries())
	fmt.Printf("Version made by: [%s], required: [%s]\n",
		strings.Join(stats.CreatorVersions(), " "),
		strings.Join(stats.ReaderVersions(), " "))
	fmt.Printf("Encoding: %s, Methods: [%s]\n",
		ar.Encoding(), strings.Join(stats.Methods(), " "))
	ratio := "compression n/a"
	if r, ok := stats.Ratio(); ok {
		ratio = fmt.Sprintf("%.2f%% compression", r)
	}
	fmt.Printf("%s (%s) (%d files, %d dirs, %d symlinks)\n",
		humanSize(stats.UncompressedTotal), ratio,
		stats.NumFiles, stats.NumDirs, stats.NumSymlinks)
}
