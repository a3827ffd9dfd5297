// schemaq — inspect JSON Schema documents from the command line.
//
// Usage:
//
//	schemaq fmt [-pretty] [-sort] <file>     normalize a schema document
//	schemaq order <file> [key ...]           print source key order
//	schemaq repl [<file>]                    interactive inspector
//
// Documents may be JSON or YAML (by extension). Decoding always threads
// the source property order through, so `fmt` round-trips author ordering.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	jsonschema "github.com/daios-ai/jsonschema"
)

const (
	historyFile = ".schemaq_history"
	promptMain  = "schemaq> "
)

var helpText = `
commands:
  :load <file>       load a JSON or YAML schema document
  :print             print the loaded schema, normalized and pretty
  :order [key ...]   key order at a path (default: properties)
  :get <key ...>     print the raw value at a path
  :help              this text
  :quit              exit
`

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "fmt":
		os.Exit(cmdFmt(os.Args[2:]))
	case "order":
		os.Exit(cmdOrder(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "-h", "--help", "help":
		usage()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: schemaq (fmt|order|repl) [args]\n")
}

func yamlExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// loadSchema reads a schema document, preserving source property order.
func loadSchema(path string) (jsonschema.Schema, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return jsonschema.Schema{}, nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err := jsonschema.DecodeSchemaYAML(data)
		return s, data, err
	default:
		opts := &jsonschema.DecodeOptions{PropertyOrder: jsonschema.SchemaPropertyOrder(data)}
		s, err := jsonschema.DecodeSchema(data, opts)
		return s, data, err
	}
}

func cmdFmt(args []string) int {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	pretty := fs.Bool("pretty", false, "indent output")
	sorted := fs.Bool("sort", false, "sort generic object keys")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: schemaq fmt [-pretty] [-sort] <file>")
		return 2
	}

	s, _, err := loadSchema(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	opts := jsonschema.MarshalOptions{SortKeys: *sorted}
	if *pretty {
		opts.Indent = "  "
	}
	out, err := jsonschema.MarshalSchema(s, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	fmt.Println(string(out))
	return 0
}

func cmdOrder(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: schemaq order <file> [key ...]")
		return 2
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	path := args[1:]
	if len(path) == 0 {
		path = []string{"properties"}
	}
	keys := jsonschema.ExtractKeyOrder(data, path...)
	if keys == nil {
		fmt.Fprintln(os.Stderr, red("no object at "+strings.Join(path, ".")))
		return 1
	}
	for _, k := range keys {
		fmt.Println(k)
	}
	return 0
}

func cmdRepl(args []string) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	var (
		doc    jsonschema.Schema
		raw    []byte
		isYAML bool
		loaded bool
	)
	if len(args) == 1 {
		var err error
		doc, raw, err = loadSchema(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}
		isYAML = yamlExt(args[0])
		loaded = true
		fmt.Printf("loaded %s\n", args[0])
	}

	fmt.Println("schemaq inspector. Type :help for commands, :quit to exit.")
	for {
		line, err := ln.Prompt(promptMain)
		if err != nil { // io.EOF or liner.ErrPromptAborted
			fmt.Println()
			return 0
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		fields := strings.Fields(line)
		switch fields[0] {
		case ":quit":
			return 0
		case ":help":
			fmt.Print(helpText)
		case ":load":
			if len(fields) != 2 {
				fmt.Println("usage: :load <file>")
				continue
			}
			d, r, err := loadSchema(fields[1])
			if err != nil {
				fmt.Fprintln(os.Stderr, red(err.Error()))
				continue
			}
			doc, raw, loaded = d, r, true
			isYAML = yamlExt(fields[1])
			fmt.Printf("loaded %s\n", fields[1])
		case ":print":
			if !loaded {
				fmt.Println("no document loaded")
				continue
			}
			out, err := jsonschema.MarshalSchema(doc, jsonschema.MarshalOptions{Indent: "  "})
			if err != nil {
				fmt.Fprintln(os.Stderr, red(err.Error()))
				continue
			}
			fmt.Println(string(out))
		case ":order":
			if !loaded {
				fmt.Println("no document loaded")
				continue
			}
			if isYAML {
				fmt.Println(":order reads raw JSON text; load a JSON document")
				continue
			}
			path := fields[1:]
			if len(path) == 0 {
				path = []string{"properties"}
			}
			keys := jsonschema.ExtractKeyOrder(raw, path...)
			if keys == nil {
				fmt.Println("no object at " + strings.Join(path, "."))
				continue
			}
			for _, k := range keys {
				fmt.Println(k)
			}
		case ":get":
			if !loaded {
				fmt.Println("no document loaded")
				continue
			}
			var v jsonschema.Value
			var err error
			if isYAML {
				v, err = jsonschema.ValueFromYAML(raw)
			} else {
				v, err = jsonschema.DecodeValue(raw)
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, red(err.Error()))
				continue
			}
			ok := true
			for _, key := range fields[1:] {
				m, isObj := v.Object()
				if !isObj {
					ok = false
					break
				}
				v, ok = m[key]
				if !ok {
					break
				}
			}
			if !ok {
				fmt.Println("no value at " + strings.Join(fields[1:], "."))
				continue
			}
			out, err := jsonschema.MarshalValue(v, jsonschema.MarshalOptions{Indent: "  ", SortKeys: true})
			if err != nil {
				fmt.Fprintln(os.Stderr, red(err.Error()))
				continue
			}
			fmt.Println(string(out))
		default:
			fmt.Println("unknown command; :help lists commands")
		}
	}
}
