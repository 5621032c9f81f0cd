package termui

// Utilities for interactive command line interfaces.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/tfunc"
	"github.com/npillmayer/tfunc/corelang"
)

// replCommand is a command handled by the REPL itself, without calling the
// interpreter.
type replCommand struct {
	name  string
	args  string
	usage string
}

var replCommands = []replCommand{
	{"help", "", "print this message"},
	{"bye", "", "quit application"},
	{"mode", "[vi|emacs]", "display or set current editing mode"},
	{"setprompt", "[prompt]", "set current prompt [to default]"},
}

var promptColor = prtxt.FgGreen

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	rl          *readline.Instance
	toolname    string
	version     string
	vimode      bool
}

// REPLCommandInterpreter is implemented by interpreters driven by a BaseREPL.
// Every line which is not a REPL command is delegated to InterpretCommand.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// NewBaseREPL creates a REPL for a tool. Input lines are remembered in
// histfile; if it is empty, a file in the temp directory is used.
// commands are the statements of the interpreter offered for completion,
// in addition to the REPL commands and the names of all functions.
func NewBaseREPL(toolname, version, histfile string, commands ...string) *BaseREPL {
	repl := &BaseREPL{toolname: toolname, version: version}
	repl.rl = newReadline(repl.defaultPrompt(), historyFile(toolname, histfile), newCompleter(commands))
	return repl
}

func historyFile(toolname, histfile string) string {
	if histfile == "" {
		return filepath.Join(os.TempDir(), toolname+"-repl-history.tmp")
	}
	if err := os.MkdirAll(filepath.Dir(histfile), 0755); err != nil {
		trace().Errorf("cannot create directory for REPL history: %v", err)
	}
	return histfile
}

func newReadline(prompt, histfile string, completer readline.AutoCompleter) *readline.Instance {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         histfile,
		AutoComplete:        completer,
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
	if err != nil {
		panic(err)
	}
	return rl
}

// newCompleter completes REPL commands, interpreter commands and function
// names at the start of a line.
func newCompleter(commands []string) *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, c := range replCommands {
		if c.name == "mode" {
			items = append(items, readline.PcItem(c.name, readline.PcItem("vi"), readline.PcItem("emacs")))
			continue
		}
		items = append(items, readline.PcItem(c.name))
	}
	for _, c := range commands {
		items = append(items, readline.PcItem(c))
	}
	for _, fn := range corelang.FunctionNames() {
		items = append(items, readline.PcItem(fn))
	}
	return readline.NewPrefixCompleter(items...)
}

func (repl *BaseREPL) defaultPrompt() string {
	return promptColor.Sprint(repl.toolname + "> ")
}

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.rl.Stdout(), repl.rl.Stderr()
}

// Prompt reads lines until `bye`, EOF or an interrupt on an empty line.
// If exitOnBye is set, the application exits afterwards.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	defer repl.rl.Close()
	fmt.Fprintf(repl.rl.Stderr(), "Welcome to %s [V%s]\n", repl.toolname, repl.version)
	for {
		line, err := repl.rl.Readline()
		if err == readline.ErrInterrupt && len(line) > 0 {
			continue
		}
		if err != nil {
			break
		}
		if repl.dispatch(strings.TrimSpace(line)) {
			break
		}
	}
	if exitOnBye {
		tfunc.Exit(0)
	}
}

// dispatch executes a REPL command or hands line to the interpreter.
// It returns true if the REPL should terminate.
func (repl *BaseREPL) dispatch(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	stderr := repl.rl.Stderr()
	switch words[0] {
	case "help":
		repl.help(stderr)
	case "bye":
		io.WriteString(stderr, "> goodbye!\n")
		return true
	case "mode":
		repl.mode(words[1:], stderr)
	case "setprompt":
		if p := strings.TrimSpace(strings.TrimPrefix(line, "setprompt")); p != "" {
			repl.rl.SetPrompt(p + " ")
		} else {
			repl.rl.SetPrompt(repl.defaultPrompt())
		}
	default:
		trace().Debugf("call interpreter on: '%s'", line)
		repl.interpret(line)
	}
	return false
}

func (repl *BaseREPL) help(w io.Writer) {
	fmt.Fprintf(w, "%s [V%s]\n\nThe following commands are available:\n\n", repl.toolname, repl.version)
	for _, c := range replCommands {
		fmt.Fprintf(w, "  %-28s : %s\n", strings.TrimSpace(c.name+" "+c.args), c.usage)
	}
	if repl.Helper != nil {
		repl.Helper(w)
	}
}

func (repl *BaseREPL) mode(args []string, w io.Writer) {
	if len(args) > 0 && (args[0] == "vi" || args[0] == "emacs") {
		repl.vimode = args[0] == "vi"
		repl.rl.SetVimMode(repl.vimode)
		return
	}
	m := "emacs"
	if repl.vimode {
		m = "vi"
	}
	fmt.Fprintf(w, "> current input mode: %s\n", m)
}

// interpret calls the interpreter, sending a statement. A panicking
// interpreter does not terminate the REPL.
func (repl *BaseREPL) interpret(line string) {
	if repl.Interpreter == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			trace().Errorf("interpreter panicked on %q: %v", line, r)
			fmt.Fprintf(repl.rl.Stderr(), "> internal error: %v\n", r)
		}
	}()
	repl.Interpreter.InterpretCommand(line)
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
