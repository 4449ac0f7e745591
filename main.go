/*
File    : go-letter/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// go-letter is the command-line front end for the Letter scripting
// language. It parses a program into an abstract syntax tree and prints
// the tree as YAML or JSON.
//
// The program comes from one of three places, in this order of precedence:
//
//	go-letter -e 'x = 42;'        # an inline expression
//	go-letter -f program.lt       # a source file
//	cat program.lt | go-letter    # standard input
//
// The exit code is 0 when the program parses and non-zero on the first
// syntax error. An interactive session is available as a subcommand:
//
//	go-letter repl
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/go-letter/dump"
	"github.com/akashmaji946/go-letter/file"
	"github.com/akashmaji946/go-letter/parser"
	"github.com/akashmaji946/go-letter/repl"
)

const (
	VERSION = "v1.0.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	LICENSE = "MIT"
	PROMPT  = "lt >>> "

	BANNER = `
   ___       _         _   _
  / __|___  | |   ___ | |_| |_ ___ _ _
 | (_ / _ \ | |__/ -_)|  _|  _/ -_) '_|
  \___\___/ |____\___| \__|\__\___|_|
`
	LINE = "------------------------------------------------------------"
)

var redColor = color.New(color.FgRed)

// Flags of the root command.
var (
	expression string
	sourcePath string
	format     string
)

// rootCmd parses one program and prints its AST.
var rootCmd = &cobra.Command{
	Use:           "go-letter",
	Short:         "Parse Letter source code into an abstract syntax tree",
	Long:          "go-letter reads a Letter program (inline, from a file, or from stdin)\nand prints its abstract syntax tree as YAML or JSON.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFormat := dump.Format(format)
		if outputFormat != dump.FormatYAML && outputFormat != dump.FormatJSON {
			return fmt.Errorf("invalid format %q: want yaml or json", format)
		}

		source, err := loadSource()
		if err != nil {
			return err
		}

		root, err := parser.Parse(source)
		if err != nil {
			redColor.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}

		data, err := dump.Marshal(root, outputFormat)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

// replCmd starts the interactive session.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive parse loop",
	Run: func(cmd *cobra.Command, args []string) {
		r := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		r.Start(os.Stdin, os.Stdout)
	},
}

// loadSource resolves the program text from the flags: an inline
// expression wins over a file path, and stdin is the fallback.
func loadSource() (string, error) {
	if expression != "" {
		return expression, nil
	}
	if sourcePath != "" {
		return file.ReadSource(sourcePath)
	}
	return file.ReadStdin(os.Stdin)
}

func init() {
	rootCmd.Flags().StringVarP(&expression, "expression", "e", "", "parse the given expression")
	rootCmd.Flags().StringVarP(&sourcePath, "file", "f", "", "parse the given source file")
	rootCmd.PersistentFlags().StringVar(&format, "format", string(dump.FormatYAML), "output format: yaml or json")
	rootCmd.AddCommand(replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
