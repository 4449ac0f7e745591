/*
File    : go-letter/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Parse-Print Loop for the Letter front end.
The REPL provides an interactive environment where users can:
- Enter Letter code line by line
- See the resulting abstract syntax tree immediately
- Switch between YAML, JSON and tree output
- Navigate command history using arrow keys
- Receive colored feedback for results and syntax errors

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the parser and the dumper to render each input.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/go-letter/dump"
	"github.com/akashmaji946/go-letter/parser"
)

// Color definitions for REPL output:
// - blueColor: Decorative lines and separators
// - yellowColor: Serialized AST output and version info
// - redColor: Syntax error messages
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// outputTree is the extra REPL-only mode on top of the dump formats:
// an indented one-node-per-line tree.
const outputTree = "tree"

// Repl represents the Read-Parse-Print Loop instance.
// It encapsulates the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the front end
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g. "lt >>> ")
	Output  string // Current output mode: "yaml", "json" or "tree"
}

// NewRepl creates and initializes a new REPL instance.
// The output mode starts as YAML; users switch it with the dot commands.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Author:  author,
		Line:    line,
		License: license,
		Prompt:  prompt,
		Output:  string(dump.FormatYAML),
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {

	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)

	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)

	cyanColor.Fprintf(writer, "%s\n", "Welcome to Letter!")
	cyanColor.Fprintf(writer, "%s\n", "Type a statement and press enter to see its syntax tree")
	cyanColor.Fprintf(writer, "%s\n", "Type '.yaml', '.json' or '.tree' to switch the output mode")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")

	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Reads, parses and prints until the user exits
//
// The loop continues until the user types '.exit' or EOF is encountered
// (Ctrl+D). Syntax errors are printed and the session continues.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g. Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}

		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		if r.handleCommand(writer, line) {
			continue
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		r.parseAndPrint(writer, line)
	}
}

// handleCommand processes the dot commands that switch the output mode.
// It returns true when the line was a command and no parse should happen.
func (r *Repl) handleCommand(writer io.Writer, line string) bool {
	switch line {
	case ".yaml":
		r.Output = string(dump.FormatYAML)
	case ".json":
		r.Output = string(dump.FormatJSON)
	case ".tree":
		r.Output = outputTree
	default:
		return false
	}
	cyanColor.Fprintf(writer, "output mode: %s\n", r.Output)
	return true
}

// parseAndPrint parses one input line and renders the result:
// the serialized AST in yellow on success, the syntax error in red
// otherwise. Unlike file mode, the REPL continues after errors so the
// user can correct mistakes and try again.
func (r *Repl) parseAndPrint(writer io.Writer, line string) {
	root, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	if r.Output == outputTree {
		visitor := &parser.TreeVisitor{}
		root.Accept(visitor)
		yellowColor.Fprintf(writer, "%s", visitor.String())
		return
	}

	data, err := dump.Marshal(root, dump.Format(r.Output))
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	yellowColor.Fprintf(writer, "%s", data)
}
