package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/t14raptor/replify/repl"
)

func main() {
	var (
		noImports   = flag.Bool("no-imports", false, "Keep static import declarations")
		noAwait     = flag.Bool("no-await", false, "Do not wrap top-level await")
		loader      = flag.String("loader", "", "Function called instead of import() to load modules")
		verbose     = flag.Bool("v", false, "Log pass decisions to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: replify [-no-imports] [-no-await] [-loader name] [-v] [file]")
		fmt.Fprintln(os.Stderr, "       replify -i  (interactive mode)")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := repl.DefaultConfig()
	cfg.Imports = !*noImports
	cfg.TopLevelAwait = !*noAwait
	cfg.Loader = *loader

	var opts []repl.Option
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		opts = append(opts, repl.WithLogger(l))
	}
	lz := repl.New(cfg, opts...)

	file := flag.Arg(0)
	if *interactive || file == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := runInteractive(lz); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(lz, file, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run legalizes file, or stdin when file is empty, and writes the result
// to w. A unit that returns at the top level is still written out.
func run(lz *repl.Legalizer, file string, w io.Writer) error {
	var (
		src []byte
		err error
	)
	if file == "" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(file)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	res, err := lz.Legalize(string(src))
	if err != nil && !errors.Is(err, repl.ErrIllegalReturn) {
		return err
	}
	if _, werr := io.WriteString(w, res.Code); werr != nil {
		return fmt.Errorf("write output: %w", werr)
	}
	return err
}
