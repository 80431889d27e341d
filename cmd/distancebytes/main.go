// Command distancebytes reads, writes, and inspects the game's .bytes
// save/level format from the command line.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/seeker14491/distance-bytes/internal/catalog"
	"github.com/seeker14491/distance-bytes/internal/config"
	"github.com/seeker14491/distance-bytes/internal/engine"
	"github.com/seeker14491/distance-bytes/internal/levelpack"
	"github.com/seeker14491/distance-bytes/internal/preview"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	setupLogging()

	if len(args) == 0 {
		usage()
		return 2
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "read":
		err = cmdRead(rest)
	case "write":
		err = cmdWrite(rest)
	case "inspect":
		err = cmdInspect(rest)
	case "index":
		err = cmdIndex(rest)
	case "pack":
		err = cmdPack(rest)
	case "help", "-h", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "distancebytes: unknown command %q\n", cmd)
		usage()
		return 2
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "distancebytes: %s: %s\n", cmd, err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: distancebytes <command> [flags]

commands:
  read     decode a .bytes file and print it as JSON/YAML
  write    re-encode a decoded JSON/YAML file back to .bytes
  inspect  summarize a .bytes file (name, guid, component count, size)
  index    add a decoded file to the local catalog database
  pack     bundle a decoded level and its preview into a .zip level pack`)
}

// setupLogging configures the default slog logger: human-readable text
// when stderr is a terminal, structured JSON otherwise.
func setupLogging() {
	level := slog.LevelInfo
	if cfg, err := config.Load(config.DefaultPath()); err == nil {
		if l, lerr := parseLevel(cfg.LogLevel); lerr == nil {
			level = l
		}
	}

	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(s))
	return l, err
}

func cmdRead(args []string) error {
	defaultFormat := "json"
	if cfg, err := config.Load(config.DefaultPath()); err == nil && cfg.OutputFormat != "" {
		defaultFormat = cfg.OutputFormat
	}

	fs := flag.NewFlagSet("read", flag.ContinueOnError)
	in := fs.String("in", "-", "input .bytes file, - for stdin")
	out := fs.String("out", "-", "output file, - for stdout (not for bytes)")
	format := fs.String("format", defaultFormat, "output format: json, yaml, bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	obj, err := readGameObject(*in)
	if err != nil {
		return err
	}

	if *format == "bytes" {
		outFile, closeOut, err := openOutputSeekable(*out)
		if err != nil {
			return err
		}
		defer closeOut()
		return engine.WriteGameObjectToStream(engine.NewWriter(outFile), &obj)
	}
	return writeEncoded(*out, *format, obj)
}

func cmdWrite(args []string) error {
	fs := flag.NewFlagSet("write", flag.ContinueOnError)
	in := fs.String("in", "-", "input JSON/YAML file, - for stdin")
	out := fs.String("out", "-", "output .bytes file (stdout is not supported: encoding seeks)")
	format := fs.String("format", "json", "input format: json, yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	inFile, closeIn, err := openInput(*in)
	if err != nil {
		return err
	}
	defer closeIn()

	data, err := io.ReadAll(inFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var obj engine.GameObject
	switch *format {
	case "yaml":
		err = yaml.Unmarshal(data, &obj)
	default:
		err = json.Unmarshal(data, &obj)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", *format, err)
	}

	outFile, closeOut, err := openOutputSeekable(*out)
	if err != nil {
		return err
	}
	defer closeOut()

	w := engine.NewWriter(outFile)
	return engine.WriteGameObjectToStream(w, &obj)
}

func cmdInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	in := fs.String("in", "-", "input .bytes file, - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	info, err := os.Stat(*in)
	var size int64
	if err == nil {
		size = info.Size()
	}

	obj, err := readGameObject(*in)
	if err != nil {
		return err
	}

	fmt.Printf("name:       %s\n", obj.Name)
	fmt.Printf("guid:       %d\n", obj.Guid)
	fmt.Printf("components: %d\n", len(obj.Components))
	if size > 0 {
		fmt.Printf("size:       %s\n", humanize.Bytes(uint64(size)))
	}
	return nil
}

func cmdIndex(args []string) error {
	fs := flag.NewFlagSet("index", flag.ContinueOnError)
	in := fs.String("in", "", "input .bytes file")
	db := fs.String("db", "distancebytes.db", "catalog database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required")
	}

	info, err := os.Stat(*in)
	if err != nil {
		return fmt.Errorf("stat %s: %w", *in, err)
	}

	obj, err := readGameObject(*in)
	if err != nil {
		return err
	}

	cat, err := catalog.Open(*db)
	if err != nil {
		return err
	}
	defer cat.Close()

	entry, err := cat.IndexGameObject(*in, obj, info.ModTime())
	if err != nil {
		return err
	}

	fmt.Printf("indexed %s as %s\n", entry.Path, entry.RowID)
	return nil
}

func cmdPack(args []string) error {
	fs := flag.NewFlagSet("pack", flag.ContinueOnError)
	in := fs.String("in", "", "input .bytes file")
	previewPath := fs.String("preview", "", "optional .tga preview image")
	out := fs.String("out", "", "output .zip level pack path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("-in and -out are required")
	}

	levelBytes, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("read %s: %w", *in, err)
	}

	obj, err := readGameObject(*in)
	if err != nil {
		return err
	}

	var previewBytes []byte
	if *previewPath != "" {
		previewBytes, err = os.ReadFile(*previewPath)
		if err != nil {
			return fmt.Errorf("read %s: %w", *previewPath, err)
		}
		if _, _, err := preview.Decode(bytes.NewReader(previewBytes)); err != nil {
			return err
		}
	}

	outFile, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer outFile.Close()

	if err := levelpack.Build(outFile, obj, levelBytes, previewBytes); err != nil {
		return err
	}

	slog.Info("built level pack", "path", *out)
	return nil
}

func readGameObject(path string) (engine.GameObject, error) {
	f, closeIn, err := openInputSeekable(path)
	if err != nil {
		return engine.GameObject{}, err
	}
	defer closeIn()

	r := engine.NewReader(f, slog.Default())
	return engine.ReadGameObjectFromStream(r)
}

func writeEncoded(path, format string, obj engine.GameObject) error {
	var data []byte
	var err error
	switch format {
	case "yaml":
		data, err = yaml.Marshal(obj)
	default:
		data, err = json.MarshalIndent(obj, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

// openInputSeekable opens a file for random-access reading; stdin is
// read fully into memory first, since the decoder seeks within its source.
func openInputSeekable(path string) (io.ReadSeeker, func(), error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		return bytes.NewReader(data), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func openOutputSeekable(path string) (io.WriteSeeker, func(), error) {
	if path == "-" {
		return nil, nil, fmt.Errorf("writing a .bytes file to stdout is not supported (encoding requires seeking)")
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
