// Command marslens is a thin front-end over package xlog: it exercises the
// three host-binding operations spec.md §6 describes (decode, export, scan)
// without containing any decoding logic of its own.
package main

import (
	"flag"
	"fmt"
	"os"

	xlog "github.com/kexuejin/marslens"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "decode":
		runDecode(os.Args[2:])
	case "export":
		runExport(os.Args[2:])
	case "scan":
		runScan(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: marslens decode|export|scan [flags]")
}

func runDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	key := fs.String("key", "", "hex-encoded TEA key")
	strict := fs.Bool("strict-sentinel", false, "reject frames with a non-zero sentinel byte")
	fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: marslens decode [-key HEX] [-strict-sentinel] <path>")
		os.Exit(2)
	}

	var stats xlog.DecodeStats
	records := xlog.DecodeWithOptions(fs.Arg(0), xlog.DecodeOptions{
		Key:            *key,
		StrictSentinel: *strict,
		Stats:          &stats,
	})
	for _, r := range records {
		fmt.Printf("[%d] [%d] [%d/%d] [%s] : %s\n", r.TimestampMs, int(r.Level), r.Pid, r.Tid, r.Tag, r.Message)
	}
	fmt.Fprintf(os.Stderr, "frames seen=%d accepted=%d plaintext_bytes=%d records=%d\n",
		stats.FramesSeen, stats.FramesAccepted, stats.PlaintextBytes, stats.RecordsEmitted)
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	key := fs.String("key", "", "hex-encoded TEA key")
	fs.Parse(args)
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: marslens export [-key HEX] <input> <output>")
		os.Exit(2)
	}

	if !xlog.Export(fs.Arg(0), fs.Arg(1), *key) {
		fmt.Fprintln(os.Stderr, "export failed")
		os.Exit(1)
	}
}

func runScan(args []string) {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: marslens scan <root>")
		os.Exit(2)
	}

	for _, path := range xlog.Scan(fs.Arg(0)) {
		fmt.Println(path)
	}
}
