/*
Command parsea runs the example grammars of module parsea on input files.

	parsea json -c integers=true config.json
	parsea sexpr --trace=debug < program.lisp
	parsea script main.script
	parsea tokens input.txt

Results are written to stdout as JSON. Syntax errors are reported with the
rune position of the furthest failure.

____________________________________________________________________________

License

This project is provided under the terms of the 3-Clause BSD license.
Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/parsea"
	jsongrammar "github.com/npillmayer/parsea/grammars/json"
	"github.com/npillmayer/parsea/grammars/script"
	"github.com/npillmayer/parsea/grammars/sexpr"
	"github.com/npillmayer/parsea/token"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func main() {
	if err := newCLI(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	trace  string
	config map[string]string
}

func newCLI(stdin io.Reader, stdout io.Writer) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "parsea",
		Short:         "Run parser-combinator grammars on input",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupTracing(opts.trace)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.trace, "trace", "t", "error",
		"trace level (error, info, debug)")
	rootCmd.PersistentFlags().StringToStringVarP(&opts.config, "config", "c", nil,
		"configuration values handed to the grammar, key=value")
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	//
	rootCmd.AddCommand(grammarCmd("json <file>", "Parse a JSON document", opts,
		func(input string, conf parsea.Option) (any, error) {
			return jsongrammar.Parse(input, conf)
		}))
	rootCmd.AddCommand(grammarCmd("sexpr <file>", "Parse an S-expression", opts,
		func(input string, _ parsea.Option) (any, error) {
			e, err := sexpr.Parse(input)
			if err != nil {
				return nil, err
			}
			return e.String(), nil
		}))
	rootCmd.AddCommand(grammarCmd("script <file>", "Parse a script and dump its syntax tree", opts,
		func(input string, conf parsea.Option) (any, error) {
			stmts, err := script.Parse(input, conf)
			if err != nil {
				return nil, err
			}
			return dumpStmts(stmts), nil
		}))
	rootCmd.AddCommand(grammarCmd("tokens <file>", "Split input into tokens", opts,
		func(input string, _ parsea.Option) (any, error) {
			return token.Drain(token.NewScanner(strings.NewReader(input), token.SkipSpace(true))), nil
		}))
	return rootCmd
}

type grammarFunc func(input string, conf parsea.Option) (any, error)

func grammarCmd(use, short string, opts *options, run grammarFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			v, err := run(input, parsea.WithConfig(makeConfig(opts.config)))
			if err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	}
}

// readInput reads the file named by the first argument, or stdin if there
// is none or it is "-".
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	return string(b), nil
}

// makeConfig converts flag values to a configuration. "true" and "false"
// become booleans.
func makeConfig(kv map[string]string) parsea.Config {
	conf := parsea.Config{}
	for k, v := range kv {
		switch v {
		case "true":
			conf[k] = true
		case "false":
			conf[k] = false
		default:
			conf[k] = v
		}
	}
	return conf
}

func setupTracing(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "error":
		l = tracing.LevelError
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level: %s", level)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.SyntaxTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(l)
	gtrace.SyntaxTracer.SetTraceLevel(l)
	return nil
}
