package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"github.com/typeref/typeref/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for typeref.
type params struct {
	version bool
	help    Help

	OutputDir string

	Embed     bool
	Highlight string
	SigLang   string

	Lang string

	Exclude []typeName

	Debug flagvalue.FileSwitch

	Files []string
}

// cliParser parses the command line arguments for typeref.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("typeref", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Filesystem:
	flag.StringVar(&p.OutputDir, "out", "_site", "")

	// HTML output:
	flag.BoolVar(&p.Embed, "embed", false, "")
	flag.StringVar(&p.Highlight, "highlight", "plain", "")
	flag.StringVar(&p.SigLang, "sig-lang", "java", "")

	// Summary synthesis:
	flag.StringVar(&p.Lang, "lang", "en", "")

	// Model selection:
	flag.Var(flagvalue.ListOf(&p.Exclude), "exclude", "")

	// Program-level:
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("TYPEREF")); err != nil {
		return nil, err
	}
	args = fset.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "typeref", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	p.Files = args
	if len(p.Files) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one model file.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// typeName is the value of the repeatable -exclude flag:
// the qualified name of a type to skip.
type typeName string

var _ flag.Getter = (*typeName)(nil)

func (n *typeName) Get() any { return string(*n) }

func (n *typeName) String() string { return string(*n) }

func (n *typeName) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("expected a type name")
	}
	*n = typeName(s)
	return nil
}
