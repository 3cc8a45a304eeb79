package bumpver

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// Git is the version-control capability a release needs. Implementations
// operate on the repository containing the process working directory.
type Git interface {
	Stage(paths ...string) error
	Commit(message string) error
	TagAnnotated(name, message string) error
}

// StatusChecker is implemented by Git implementations that can report
// uncommitted paths. Run consults it, when present, to refuse a release that
// would sweep unrelated edits into the release commit.
type StatusChecker interface {
	UncommittedPaths() ([]string, error)
}

// ExecGit runs git as a subprocess in Dir, or in the process working
// directory when Dir is empty.
type ExecGit struct {
	Dir string
}

// Check verifies that git is available on the system.
func (g *ExecGit) Check() error {
	if err := exec.Command("git", "--version").Run(); err != nil {
		return errors.New("git is not available on the system")
	}
	return nil
}

func (g *ExecGit) run(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s failed: %v, detail: %s", args[0], err, stderr.String())
	}
	return nil
}

// Stage adds the given paths to the index.
func (g *ExecGit) Stage(paths ...string) error {
	return g.run(append([]string{"add"}, paths...)...)
}

// Commit records the staged changes with the given message.
func (g *ExecGit) Commit(message string) error {
	return g.run("commit", "-m", message)
}

// TagAnnotated creates an annotated tag at HEAD.
func (g *ExecGit) TagAnnotated(name, message string) error {
	return g.run("tag", "-a", name, "-m", message)
}

// UncommittedPaths reports the repository-relative paths with uncommitted
// changes, parsed out of the porcelain status format.
func (g *ExecGit) UncommittedPaths() ([]string, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = g.Dir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to check git status: %w", err)
	}

	var paths []string
	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(line) < 4 {
			continue
		}
		paths = append(paths, string(bytes.TrimSpace(line[3:])))
	}
	return paths, nil
}
