/*
Command marleydemo is a small CLI wiring the grammar-DSL collaborators
(marley/lexer, marley/dsl) to the parsing engine (marley/earley): it loads
a grammar written in the toy DSL (lexed and reduced by those two
packages), then reads lines of target-language input from stdin, splits
each on whitespace into opaque string tokens, and feeds them into the
parser one at a time, printing chart progress as it goes.

It is demonstration plumbing, not a component the engine depends on: a
TOML config (github.com/BurntSushi/toml) names the grammar file to load,
github.com/spf13/cobra and github.com/spf13/pflag provide the command
and flags, github.com/fatih/color highlights pass/fail/in-progress
output, and github.com/prometheus/client_golang optionally serves a
handful of counters when --metrics-addr is given.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/brager/marley/dsl"
	"github.com/brager/marley/earley"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "marleydemo",
		Short: "Feed a line of input through an incremental Earley parser, one token at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, metricsAddr)
		},
	}
	flags := pflag.NewFlagSet("marleydemo", pflag.ExitOnError)
	flags.StringVarP(&configPath, "config", "c", "marleydemo.toml", "path to a TOML config naming the grammar file to load")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9100) while input is being read")
	cmd.PersistentFlags().AddFlagSet(flags)
	return cmd
}

func run(configPath, metricsAddr string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	configureTracing(cfg.Trace.Level)

	src, err := os.ReadFile(cfg.Grammar)
	if err != nil {
		return fmt.Errorf("marleydemo: reading grammar %s: %w", cfg.Grammar, err)
	}
	doc, err := dsl.ParseDoc(string(src))
	if err != nil {
		return fmt.Errorf("marleydemo: parsing grammar DSL: %w", err)
	}
	grammar, startRule, err := dsl.Reduce(doc)
	if err != nil {
		return fmt.Errorf("marleydemo: reducing grammar DSL: %w", err)
	}

	m := newMetrics()
	if metricsAddr != "" {
		go func() {
			if err := m.serve(metricsAddr); err != nil {
				fmt.Fprintf(os.Stderr, "marleydemo: metrics server: %v\n", err)
			}
		}()
		fmt.Fprintf(os.Stderr, "serving metrics on %s/metrics\n", metricsAddr)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		p, err := earley.MakeMarley(grammar, startRule)
		if err != nil {
			return fmt.Errorf("marleydemo: %w", err)
		}
		tokens := tokenizeLine(scanner.Text())
		feedLine(p, tokens, m)
	}
	return scanner.Err()
}

// tokenizeLine splits a line of input into whitespace-separated lexemes.
// The grammar DSL's terminal literals are the tokens themselves (e.g.
// "(", ")", "+", "1"), so unlike marley/lexer (which tokenizes the DSL
// source itself) the target language needs no quoting or categorization,
// just whitespace as a separator.
func tokenizeLine(line string) []string {
	return strings.Fields(line)
}

// feedLine feeds one line's worth of lexemes through p, printing the
// running status after every token.
func feedLine(p *earley.Parser[string], tokens []string, m *metrics) {
	for _, tok := range tokens {
		p.Feed(tok)
		m.tokensFed.Inc()
		if p.Failed() {
			msg, _ := p.GetFailure()
			color.Red("failed at %q: %s", tok, msg)
			m.parsesFailed.Inc()
			return
		}
		if p.Finished() {
			color.Green("accepted after %q (still extendable)", tok)
		} else {
			color.Yellow("progress after %q", tok)
		}
	}
	if p.Finished() {
		m.parsesDone.Inc()
	}
}

func configureTracing(level string) {
	t := tracing.Select("marley.earley")
	switch level {
	case "debug":
		t.SetTraceLevel(tracing.LevelDebug)
	case "error":
		t.SetTraceLevel(tracing.LevelError)
	default:
		t.SetTraceLevel(tracing.LevelInfo)
	}
}
