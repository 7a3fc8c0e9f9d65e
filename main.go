package main

import (
	"os"

	"log/slog"

	"github.com/jessevdk/go-flags"
)

var globalOption struct {
	Debug   bool `long:"debug" description:"show debug logs"`
	Quiet   bool `short:"q" long:"quiet" description:"suppress logs"`
	JsonLog bool `long:"json-log" description:"use json format for logging"`
}

func init_log() {
	var level slog.Level = slog.LevelInfo
	if globalOption.Debug {
		level = slog.LevelDebug
	} else if globalOption.Quiet {
		level = slog.LevelWarn
	}
	slog.SetLogLoggerLevel(level)
	if globalOption.JsonLog {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}
}

func newParser() *flags.Parser {
	var err error
	var infocmd InfoCmd
	var listcmd ListCmd
	var extractcmd ExtractCmd
	var compresscmd CompressCmd
	var versioncmd VersionCmd
	parser := flags.NewParser(&globalOption, flags.Default)
	_, err = parser.AddCommand("info", "show archive info", "show information about a ZIP file", &infocmd)
	if err != nil {
		slog.Error("addcommand info", "error", err)
		panic(err)
	}
	_, err = parser.AddCommand("list", "list entries", "list files contained in a ZIP file", &listcmd)
	if err != nil {
		slog.Error("addcommand list", "error", err)
		panic(err)
	}
	_, err = parser.AddCommand("extract", "extract entries", "extract files contained in a ZIP archive to stdout", &extractcmd)
	if err != nil {
		slog.Error("addcommand extract", "error", err)
		panic(err)
	}
	_, err = parser.AddCommand("compress", "add files to archive", "add files to a ZIP archive (not implemented)", &compresscmd)
	if err != nil {
		slog.Error("addcommand compress", "error", err)
		panic(err)
	}
	_, err = parser.AddCommand("version", "show version", "show version", &versioncmd)
	if err != nil {
		slog.Error("addcommand version", "error", err)
		panic(err)
	}
	return parser
}

func main() {
	parser := newParser()
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		slog.Error("error exit", "error", err)
		os.Exit(1)
	}
}
