package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/mattn/go-isatty"
	"github.com/mliezun/pulse/internal"
	"github.com/sirupsen/logrus"
)

// exit code for a wrong command line
const exitUsage = 64

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprintln(w, color.Red(fmt.Sprint(a...)))
	}
	return fmt.Fprintln(w, a...)
}

func main() {
	configPath := flag.String("config", "", "path to a pulse.toml file")
	printAST := flag.Bool("ast", false, "print the syntax tree instead of running the script")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: pulse [-config pulse.toml] [-ast] [/path/to/script.pulse]")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := internal.LoadConfig(*configPath)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.SetLevel(cfg.LogLevel())
	if !cfg.Log.Color || !isatty.IsTerminal(os.Stderr.Fd()) {
		color.Disable()
	}

	session := internal.NewSession(cfg, stdPrinter{})

	switch flag.NArg() {
	case 0:
		os.Exit(runRepl(session, cfg.Repl))
	case 1:
		os.Exit(runFile(session, flag.Arg(0), *printAST))
	default:
		flag.Usage()
		os.Exit(exitUsage)
	}
}

func runFile(session *internal.Session, path string, printAST bool) int {
	b, err := os.ReadFile(path)
	if err != nil {
		logrus.WithField("path", path).Fatal(err)
	}
	source := string(b)

	if !printAST {
		return session.RunSource(source)
	}

	prog, errs := session.Parse(source)
	if len(errs) > 0 {
		for _, e := range errs {
			stdPrinter{}.Fprintln(os.Stderr, e.Error())
		}
		return internal.ExitStaticError
	}
	fmt.Print(prog)
	return internal.ExitOK
}
