package domain

import "strings"

// Command describes one invocation of an external program.
// Dir is relative to the working directory of the environment it runs in.
type Command struct {
	Program string
	Args    []string
	Dir     string
}

// NewCommand creates a Command that runs in the environment's working directory.
func NewCommand(program string, args ...string) Command {
	return Command{Program: program, Args: args}
}

// In returns a copy of the command that runs in dir.
func (c Command) In(dir string) Command {
	c.Dir = dir
	return c
}

// String renders the command line as it would be typed into a shell.
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(quoteArg(c.Program))
	for _, arg := range c.Args {
		b.WriteByte(' ')
		b.WriteString(quoteArg(arg))
	}
	return b.String()
}

func quoteArg(s string) string {
	if s == "" {
		return `""`
	}
	if !strings.ContainsAny(s, " \t\n\"'\\") {
		return s
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}
