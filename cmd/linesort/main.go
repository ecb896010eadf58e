package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/linesort/internal/config"
	"git.home.luguber.info/inful/linesort/internal/engine"
	lserrors "git.home.luguber.info/inful/linesort/internal/errors"
	"git.home.luguber.info/inful/linesort/internal/logfields"
	"git.home.luguber.info/inful/linesort/internal/reader"
)

var CLI struct {
	Reverse    bool   `help:"Sort the lines descending, instead of ascending."`
	IgnoreCase bool   `help:"Ignore the character casing when sorting the lines."`
	Natural    bool   `help:"Sort the lines using 'natural' string order."`
	Locale     string `help:"Sort using locale collation for the given BCP 47 tag." placeholder:"TAG"`
	Unique     bool   `help:"Discard any duplicate lines from the result set."`
	Shuffle    bool   `help:"Randomly permute the lines instead of sorting them."`
	Seed       *int64 `help:"Fixed random seed for --shuffle (default: nondeterministic)."`
	Trim       bool   `help:"Remove leading/trailing whitespace characters."`
	SkipBlank  bool   `help:"Discard any lines consisting solely of whitespaces."`
	ForceFlush bool   `help:"Force flush of the output after each line was printed."`
	KeepGoing  bool   `help:"Do not abort, if processing an input file failed."`
	Encoding   string `help:"Input text encoding (utf-8, utf-16, utf-16le, utf-16be, latin-1)."`
	Output     string `short:"o" help:"Write the result to a file instead of stdout." type:"path"`
	Config     string `short:"c" help:"Defaults file path (YAML)." type:"path"`
	Verbose    bool   `short:"v" help:"Enable verbose logging."`

	Files []string `arg:"" optional:"" help:"Input files; stdin when omitted ('-' reads stdin explicitly)."`
}

func main() {
	os.Exit(run())
}

func run() int {
	kong.Parse(&CLI,
		kong.Name("linesort"),
		kong.Description("Reads lines from files or stdin, sorts or shuffles these lines, and prints them to stdout."))

	// Set up logging. Data goes to stdout, so diagnostics stay on stderr
	// and are quiet unless something is wrong or --verbose is given.
	logLevel := slog.LevelWarn
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	opts, err := config.Load(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", logfields.Error(err))
		return lserrors.ExitCodeFor(err)
	}
	applyFlags(opts)

	if err := opts.Validate(); err != nil {
		slog.Error("Invalid configuration", logfields.Error(err))
		return lserrors.ExitCodeFor(err)
	}
	if _, err := reader.LookupEncoding(opts.Encoding); err != nil {
		verr := lserrors.ValidationFailed(err.Error())
		slog.Error("Invalid configuration", logfields.Error(verr))
		return lserrors.ExitCodeFor(verr)
	}

	eng, err := engine.Build(opts)
	if err != nil {
		slog.Error("Invalid ordering configuration", logfields.Error(err))
		return lserrors.ExitCodeFor(err)
	}

	names := CLI.Files
	if len(names) == 0 {
		names = []string{"-"}
	}
	slog.Debug("Reading input",
		logfields.Sources(len(names)),
		logfields.Encoding(opts.Encoding),
		logfields.Ordering(opts.Kind().String()))

	var srcErr error
	for _, name := range names {
		if err := readSource(name, opts, eng); err != nil {
			srcErr = err
			slog.Error("Failed to process input source", logfields.Source(name), logfields.Error(err))
			if !opts.KeepGoing {
				break
			}
		}
	}

	// The original behavior: a failed source never suppresses the output
	// of the sources that did read cleanly.
	out := io.Writer(os.Stdout)
	var outFile *os.File
	if CLI.Output != "" {
		outFile, err = os.Create(CLI.Output)
		if err != nil {
			oerr := lserrors.OutputFailed(err)
			slog.Error("Failed to open output file", logfields.Output(CLI.Output), logfields.Error(err))
			return lserrors.ExitCodeFor(oerr)
		}
		out = outFile
	}

	slog.Debug("Emitting result", logfields.Lines(eng.Len()))
	if err := eng.Emit(out, opts.ForceFlush); err != nil {
		slog.Error("Failed to write result", logfields.Error(err))
		return lserrors.ExitCodeFor(err)
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			oerr := lserrors.OutputFailed(err)
			slog.Error("Failed to close output file", logfields.Output(CLI.Output), logfields.Error(err))
			return lserrors.ExitCodeFor(oerr)
		}
	}

	if srcErr != nil {
		return lserrors.ExitCodeFor(srcErr)
	}
	return lserrors.ExitOK
}

// applyFlags overlays command-line flags on the loaded defaults. Boolean
// flags can only enable behavior; string and seed flags override when set.
func applyFlags(opts *config.Options) {
	opts.Reverse = opts.Reverse || CLI.Reverse
	opts.IgnoreCase = opts.IgnoreCase || CLI.IgnoreCase
	opts.Natural = opts.Natural || CLI.Natural
	opts.Unique = opts.Unique || CLI.Unique
	opts.Shuffle = opts.Shuffle || CLI.Shuffle
	opts.Trim = opts.Trim || CLI.Trim
	opts.SkipBlank = opts.SkipBlank || CLI.SkipBlank
	opts.ForceFlush = opts.ForceFlush || CLI.ForceFlush
	opts.KeepGoing = opts.KeepGoing || CLI.KeepGoing
	if CLI.Locale != "" {
		opts.Locale = CLI.Locale
	}
	if CLI.Encoding != "" {
		opts.Encoding = CLI.Encoding
	}
	if CLI.Seed != nil {
		opts.Seed = CLI.Seed
	}
}

func readSource(name string, opts *config.Options, eng engine.Engine) error {
	in := os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return lserrors.SourceFailed(name, err)
		}
		defer f.Close()
		in = f
	}

	src, err := reader.New(in, opts.Encoding)
	if err != nil {
		return lserrors.SourceFailed(name, err)
	}
	if err := src.Pump(eng, reader.Filter{Trim: opts.Trim, SkipBlank: opts.SkipBlank}); err != nil {
		return lserrors.SourceFailed(name, err)
	}
	return nil
}
