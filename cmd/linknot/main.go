// linknot - links notation codec CLI tool
//
// Usage:
//
//	linknot from-json [file]               Convert JSON to compact notation
//	linknot to-json [file]                 Convert notation to JSON
//	linknot fmt [file]                     Re-emit a flat list in canonical form
//	linknot get <name> [--json|--numbers|--strings]
//	                                       Print a dataset (raw or decoded)
//	linknot put <name> [file] [--json]     Save a dataset from notation or JSON
//	linknot ls                             List datasets
//	linknot path <name>                    Print a dataset's file path
//	linknot require <name>                 Exit non-zero if a dataset is absent
//	linknot version                        Print version info
//
// Datasets live under $LINKNOT_DIR (default ~/.linknot); --dir
// overrides. If no file is given, reads from stdin.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/grouphunt/linknot/config"
	"github.com/grouphunt/linknot/dataset"
	"github.com/grouphunt/linknot/notation"
)

const version = "1.0.0"

func main() {
	config.InitConfig()
	setupLogging()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	cmd := os.Args[1]

	flags := flag.NewFlagSet("linknot", flag.ExitOnError)
	flags.Usage = printUsage
	dir := flags.String("dir", config.GetString("data_dir"), "dataset base directory")
	asJSON := flags.Bool("json", false, "treat dataset content as a JSON document")
	numbersOnly := flags.Bool("numbers", false, "print only the numeric elements")
	stringsOnly := flags.Bool("strings", false, "print only the string elements")
	flags.Parse(os.Args[2:])
	args := flags.Args()

	store := dataset.New(*dir)
	log.Debugf("using dataset dir %s", store.Dir())

	switch cmd {
	case "from-json":
		cmdFromJSON(inputFor(args, 0))
	case "to-json":
		cmdToJSON(inputFor(args, 0))
	case "fmt":
		cmdFmt(inputFor(args, 0))
	case "get":
		cmdGet(store, nameArg(args, cmd), *asJSON, *numbersOnly, *stringsOnly)
	case "put":
		cmdPut(store, nameArg(args, cmd), inputFor(args, 1), *asJSON)
	case "ls":
		cmdLs(store)
	case "path":
		fmt.Println(store.Path(nameArg(args, cmd)))
	case "require":
		cmdRequire(store, nameArg(args, cmd))
	case "version", "-v", "--version":
		fmt.Printf("linknot %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func setupLogging() {
	log.SetLevel(log.ErrorLevel)
	if config.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `linknot - links notation codec CLI tool

Usage:
  linknot from-json [file]               Convert JSON to compact notation
  linknot to-json [file]                 Convert notation to JSON
  linknot fmt [file]                     Re-emit a flat list in canonical form
  linknot get <name> [--json|--numbers|--strings]
                                         Print a dataset (raw or decoded)
  linknot put <name> [file] [--json]     Save a dataset from notation or JSON
  linknot ls                             List datasets
  linknot path <name>                    Print a dataset's file path
  linknot require <name>                 Exit non-zero if a dataset is absent
  linknot version                        Print version info

Options:
  --dir <path>   Dataset base directory (default $LINKNOT_DIR or ~/.linknot)
  --json         get/put: dataset content is a JSON document
  --numbers      get: print only the numeric elements, one per line
  --strings      get: print only the string elements, one per line

If no file is given, reads from stdin.

Examples:
  echo '{"name":"John","age":30}' | linknot from-json
  # Output: ((age 30) (name John))

  echo '(123 abc 456)' | linknot to-json
  # Output: [123,"abc",456]

  echo '(1 2 3)' | linknot put ids
  linknot get ids --numbers
`)
}

// cmdFromJSON: JSON -> compact notation
func cmdFromJSON(r io.Reader) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}
	text, err := notation.JSONToNotation(data)
	if err != nil {
		fatal("convert: %v", err)
	}
	fmt.Println(text)
}

// cmdToJSON: notation -> JSON
func cmdToJSON(r io.Reader) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}
	out, err := notation.NotationToJSON(string(data))
	if err != nil {
		fatal("convert: %v", err)
	}
	fmt.Println(string(out))
}

// cmdFmt: notation -> canonical flat form
func cmdFmt(r io.Reader) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}
	values, err := notation.Parse(string(data))
	if err != nil {
		fatal("parse: %v", err)
	}
	// A lone top-level link is the flat-list file form; re-emit its
	// elements
	if len(values) == 1 {
		if items, err := values[0].Items(); err == nil {
			values = items
		}
	}
	fmt.Println(notation.Emit(values))
}

func cmdGet(store *dataset.Store, name string, asJSON, numbersOnly, stringsOnly bool) {
	if asJSON {
		v, ok, err := store.LoadJSON(name)
		if err != nil {
			fatal("load %s: %v", name, err)
		}
		if !ok {
			fatal("dataset %q not found in %s", name, store.Dir())
		}
		out, err := json.Marshal(v)
		if err != nil {
			fatal("encode %s: %v", name, err)
		}
		fmt.Println(string(out))
		return
	}

	flat, err := store.LoadFlat(name)
	if err != nil {
		fatal("load %s: %v", name, err)
	}
	if flat == nil {
		fatal("dataset %q not found in %s", name, store.Dir())
	}
	log.Debugf("loaded %s: %d values", name, len(flat.Values))

	switch {
	case numbersOnly:
		for _, n := range flat.Numbers {
			fmt.Println(n)
		}
	case stringsOnly:
		for _, s := range flat.Strings {
			fmt.Println(s)
		}
	default:
		fmt.Println(flat.Raw)
	}
}

func cmdPut(store *dataset.Store, name string, r io.Reader, asJSON bool) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}

	if asJSON {
		var v interface{}
		if err := json.Unmarshal(data, &v); err != nil {
			fatal("parse json: %v", err)
		}
		if err := store.SaveJSON(name, v); err != nil {
			fatal("save %s: %v", name, err)
		}
		return
	}

	values, err := notation.Parse(string(data))
	if err != nil {
		fatal("parse: %v", err)
	}
	if len(values) == 1 {
		if items, err := values[0].Items(); err == nil {
			values = items
		}
	}
	if err := store.SaveFlat(name, values); err != nil {
		fatal("save %s: %v", name, err)
	}
	log.Debugf("saved %s: %d values", name, len(values))
}

func cmdLs(store *dataset.Store) {
	entries, err := os.ReadDir(store.Dir())
	if os.IsNotExist(err) {
		return
	}
	if err != nil {
		fatal("list datasets: %v", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			fmt.Println(entry.Name())
		}
	}
}

// cmdRequire terminates with a non-zero status when the dataset is
// absent. This is the one place absence affects process lifecycle;
// the library itself only reports it.
func cmdRequire(store *dataset.Store, name string) {
	if !store.Exists(name) {
		fmt.Fprintf(os.Stderr, "linknot: dataset %q not found in %s\n", name, store.Dir())
		os.Exit(1)
	}
	log.Debugf("dataset %s present", name)
}

// inputFor returns the file at args[idx], or stdin.
func inputFor(args []string, idx int) io.Reader {
	if idx < len(args) && args[idx] != "-" {
		f, err := os.Open(args[idx])
		if err != nil {
			fatal("open file: %v", err)
		}
		return f
	}
	return os.Stdin
}

func nameArg(args []string, cmd string) string {
	if len(args) < 1 {
		fatal("%s: missing dataset name", cmd)
	}
	return args[0]
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "linknot: "+format+"\n", args...)
	os.Exit(1)
}
