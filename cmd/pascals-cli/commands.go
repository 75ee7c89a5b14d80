package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"pascals/internal/ast"
	"pascals/internal/automaton"
	"pascals/internal/errors"
	"pascals/internal/lexer"
	"pascals/internal/parser"
	"pascals/internal/printer"
	"pascals/internal/semantic"
)

// Globals are shared by every subcommand.
type Globals struct {
	Rules     string `help:"Automaton rules file (JSON or YAML); the embedded default is used when omitted." type:"existingfile" optional:""`
	Verbosity int    `help:"Log verbosity." short:"v" type:"counter" default:"0"`
	Debug     bool   `help:"Dump internal representations of results." short:"d"`
}

var log = commonlog.GetLogger("pascals.cli")

func (g *Globals) newLexer() (*lexer.Lexer, error) {
	if g.Rules == "" {
		return lexer.NewDefault()
	}
	cfg, err := automaton.LoadConfig(g.Rules)
	if err != nil {
		return nil, err
	}
	return lexer.New(cfg)
}

// LexCmd tokenizes one file and prints the kind/lexeme listing.
type LexCmd struct {
	File   string `arg:"" help:"Source file to tokenize." type:"existingfile"`
	All    bool   `help:"Include whitespace and comment tokens."`
	Output string `help:"Write the listing to a file instead of stdout." short:"o" optional:""`
	Check  bool   `help:"Compare the listing against the expected golden file."`
	Watch  bool   `help:"Re-run whenever the file changes." short:"w"`
}

func (cmd *LexCmd) Run(globals *Globals) error {
	run := func() error {
		return runStage(globals, cmd.File, cmd.Output, cmd.Check, func(source string) (string, error) {
			lx, err := globals.newLexer()
			if err != nil {
				return "", err
			}

			tokens := lx.Tokenize(source)
			if !cmd.All {
				tokens = parser.Filter(tokens)
			}
			if globals.Debug {
				repr.Println(tokens)
			}

			var b strings.Builder
			if err := printer.WriteTokens(&b, tokens); err != nil {
				return "", err
			}
			return b.String(), nil
		})
	}
	if cmd.Watch {
		return watchAndRun(cmd.File, run)
	}
	return run()
}

// ParseCmd parses one file and prints the tree.
type ParseCmd struct {
	File   string `arg:"" help:"Source file to parse." type:"existingfile"`
	Format string `help:"Output format." enum:"tree,json" default:"tree"`
	Output string `help:"Write the tree to a file instead of stdout." short:"o" optional:""`
	Check  bool   `help:"Compare the tree against the expected golden file."`
	Watch  bool   `help:"Re-run whenever the file changes." short:"w"`
}

func (cmd *ParseCmd) Run(globals *Globals) error {
	run := func() error {
		return runStage(globals, cmd.File, cmd.Output, cmd.Check, func(source string) (string, error) {
			prog, err := parseWith(globals, source)
			if err != nil {
				return "", err
			}
			if globals.Debug {
				repr.Println(prog)
			}

			if cmd.Format == "json" {
				return printer.FormatJSON(prog)
			}
			return printer.FormatTree(prog), nil
		})
	}
	if cmd.Watch {
		return watchAndRun(cmd.File, run)
	}
	return run()
}

// AnalyzeCmd runs the full pipeline and prints the decorated tree plus
// the symbol table dump.
type AnalyzeCmd struct {
	File    string `arg:"" help:"Source file to analyze." type:"existingfile"`
	Format  string `help:"Output format." enum:"tree,json" default:"tree"`
	Symbols bool   `help:"Print only the symbol table." short:"s"`
	Output  string `help:"Write the report to a file instead of stdout." short:"o" optional:""`
	Check   bool   `help:"Compare the report against the expected golden file."`
	Watch   bool   `help:"Re-run whenever the file changes." short:"w"`
}

func (cmd *AnalyzeCmd) Run(globals *Globals) error {
	run := func() error {
		return runStage(globals, cmd.File, cmd.Output, cmd.Check, func(source string) (string, error) {
			prog, err := parseWith(globals, source)
			if err != nil {
				return "", err
			}

			analyzer := semantic.NewAnalyzer()
			if err := analyzer.Analyze(prog); err != nil {
				return "", err
			}

			if cmd.Format == "json" {
				if cmd.Symbols {
					return printer.SymbolTableJSON(analyzer.Table())
				}
				return printer.FormatJSON(prog)
			}

			var b strings.Builder
			if !cmd.Symbols {
				b.WriteString(printer.FormatDecoratedTree(prog, analyzer.Decoration))
				b.WriteString("\n\n")
			}
			if err := printer.WriteSymbolTable(&b, analyzer.Table()); err != nil {
				return "", err
			}
			return b.String(), nil
		})
	}
	if cmd.Watch {
		return watchAndRun(cmd.File, run)
	}
	return run()
}

// ValidateCmd checks an automaton rules file and reports structural
// problems and suspicious spots.
type ValidateCmd struct {
	File string `arg:"" help:"Rules file to validate (JSON or YAML)." type:"existingfile" optional:""`
}

func (cmd *ValidateCmd) Run(globals *Globals) error {
	var cfg automaton.Config
	var err error
	name := cmd.File
	if name == "" {
		cfg = automaton.DefaultConfig()
		name = "embedded rules"
	} else {
		cfg, err = automaton.LoadConfig(cmd.File)
		if err != nil {
			return err
		}
	}

	report, err := automaton.Validate(cfg, nil)
	if err != nil {
		color.Red("%s: %v", name, err)
		os.Exit(1)
	}
	if globals.Debug {
		repr.Println(report)
	}

	fmt.Printf("states: %d, reachable: %d, unreachable: %d, dead: %d, class overlaps: %d\n",
		len(report.States), len(report.ReachableStates),
		len(report.UnreachableStates), len(report.DeadStates),
		len(report.CharClassOverlaps))
	color.Green("%s is valid", name)
	return nil
}

func parseWith(globals *Globals, source string) (prog *ast.Program, err error) {
	lx, err := globals.newLexer()
	if err != nil {
		return nil, err
	}
	return parser.ParseTokens(lx.Tokenize(source))
}

// runStage reads the source, produces the stage's report, and routes it
// to stdout, a file, or the golden comparison. Taxonomy errors render
// with source context; anything else propagates as-is.
func runStage(globals *Globals, path, output string, check bool, produce func(string) (string, error)) error {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	source := string(data)

	result, err := produce(source)
	if err != nil {
		reporter := errors.NewReporter(path, source)
		fmt.Fprint(os.Stderr, reporter.Format(errors.Diagnose(err, source)))
		color.Red("Processing failed after %s", formatDuration(time.Since(start)))
		os.Exit(1)
	}

	if check {
		return checkGolden(result, expectedPath(path))
	}

	if output != "" {
		if err := os.WriteFile(output, []byte(result), 0o644); err != nil {
			return err
		}
		log.Infof("wrote %s", output)
	} else {
		fmt.Println(result)
	}

	color.Green("Successfully processed %s in %s", path, formatDuration(time.Since(start)))
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
