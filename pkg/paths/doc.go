// Package paths resolves the project directory the hook works in.
//
// The project root is resolved in priority order:
//
//  1. an explicit override (the --project-dir flag)
//  2. the project environment variable (CLAUDE_PROJECT_DIR by default)
//  3. the running executable's location, when it sits under the marker
//     segment (.claude/hooks by default); the root is two levels above it
//  4. the cwd reported by the host in the hook payload
//
// The resolved directory must exist.
package paths
