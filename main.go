package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/text/language"

	"github.com/typeref/typeref/internal/comment"
	"github.com/typeref/typeref/internal/highlight"
	"github.com/typeref/typeref/internal/html"
	"github.com/typeref/typeref/internal/loader"
	"github.com/typeref/typeref/internal/model"
	"github.com/typeref/typeref/internal/naming"
	"github.com/typeref/typeref/internal/sliceutil"
	"github.com/typeref/typeref/internal/vistable"
)

// Overridden at release time with -ldflags.
var _version = "dev"

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("typeref: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	lang, err := language.Parse(opts.Lang)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("bad -lang %q: %w", opts.Lang, err))
	}

	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() { err = errors.Join(err, closeDebug()) }()

	ldr := loader.New()
	for _, file := range opts.Files {
		if err := ldr.LoadFile(file); err != nil {
			return errtrace.Wrap(err)
		}
	}
	types, err := ldr.Types()
	if err != nil {
		return errtrace.Wrap(err)
	}

	if len(opts.Exclude) > 0 {
		skip := make(map[string]struct{}, len(opts.Exclude))
		for _, name := range opts.Exclude {
			skip[string(name)] = struct{}{}
		}
		types = sliceutil.RemoveFunc(types, func(typ *model.Type) bool {
			_, ok := skip[typ.QualifiedName()]
			return ok
		})
	}

	hl := &highlight.Highlighter{
		Style:      styles.Get(opts.Highlight),
		UseClasses: !opts.Embed,
	}

	g := Generator{
		Log: log.New(debugw, "", 0),
		Renderer: &html.Renderer{
			Embedded:    opts.Embed,
			Highlighter: hl,
		},
		Factory: &html.WriterFactory{
			Highlighter: hl,
			Lexer:       highlight.LexerFor(opts.SigLang),
		},
		Finder:     vistable.DocFinder{},
		Convention: naming.Bean,
		Messages:   comment.NewMessages(lang),
		OutDir:     opts.OutputDir,
	}
	return errtrace.Wrap(g.Generate(types))
}
