// Package hook is the prompt hook boundary. A Runner reads the hook payload
// from stdin, resolves the project, loads its skill rules, evaluates the
// prompt and prints the advisory. It never returns an error: every outcome
// is reduced to an exit code and text on stdout or stderr.
package hook
