package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/skillhook/pkg/errors"
)

// Environment variable names
const (
	// EnvProjectDir is the default variable holding the project root
	EnvProjectDir = "CLAUDE_PROJECT_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// DefaultMarker identifies a binary installed in a project's hook directory
	DefaultMarker = ".claude/hooks"
)

// Source records which step of the resolution order produced the directory
type Source string

const (
	SourceFlag       Source = "flag"
	SourceEnv        Source = "env"
	SourceExecutable Source = "executable"
	SourceInput      Source = "input"
)

// ResolveOptions carries everything resolution depends on, so callers and
// tests control the environment explicitly
type ResolveOptions struct {
	Override      string
	EnvVar        string
	Marker        string
	ExecutableDir string
	InputCwd      string
}

// Resolution is the outcome of project directory resolution
type Resolution struct {
	Dir    string
	Source Source

	// Inputs, kept for diagnostics
	EnvVar        string
	EnvValue      string
	ExecutableDir string
}

// ResolveProjectDir picks the project directory and checks that it exists.
// On failure the returned Resolution still describes what was tried.
func ResolveProjectDir(opts ResolveOptions) (Resolution, error) {
	envVar := opts.EnvVar
	if envVar == "" {
		envVar = EnvProjectDir
	}
	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	res := Resolution{
		EnvVar:        envVar,
		EnvValue:      os.Getenv(envVar),
		ExecutableDir: opts.ExecutableDir,
	}

	switch {
	case opts.Override != "":
		res.Dir, res.Source = expandHome(opts.Override), SourceFlag
	case res.EnvValue != "":
		res.Dir, res.Source = expandHome(res.EnvValue), SourceEnv
	case hasMarker(opts.ExecutableDir, marker):
		res.Dir, res.Source = filepath.Clean(filepath.Join(opts.ExecutableDir, "..", "..")), SourceExecutable
	default:
		res.Dir, res.Source = opts.InputCwd, SourceInput
	}

	if err := validateDir(res.Dir); err != nil {
		return res, err
	}
	return res, nil
}

func validateDir(dir string) error {
	if dir == "" {
		return errors.New(errors.ErrProjectDir, "project directory could not be resolved").
			WithDetail("path", dir)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrProjectDir, "project directory does not exist: %s", dir).
			WithDetail("path", dir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrProjectDir, "project directory is not a directory: %s", dir).
			WithDetail("path", dir)
	}
	return nil
}

// hasMarker reports whether dir contains the marker path segment
func hasMarker(dir, marker string) bool {
	if dir == "" || marker == "" {
		return false
	}
	return strings.Contains(filepath.ToSlash(dir), filepath.ToSlash(marker))
}

// ExecutableDir returns the directory of the running binary with symlinks
// resolved, or "" when it cannot be determined
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
