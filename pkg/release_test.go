package bumpver

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorderGit records the git operations a release performs. failStep, when
// set, makes the named operation fail.
type recorderGit struct {
	staged   [][]string
	commits  []string
	tags     [][2]string
	failStep string
}

func (g *recorderGit) Stage(paths ...string) error {
	if g.failStep == "stage" {
		return errors.New("stage failed")
	}
	g.staged = append(g.staged, paths)
	return nil
}

func (g *recorderGit) Commit(message string) error {
	if g.failStep == "commit" {
		return errors.New("commit failed")
	}
	g.commits = append(g.commits, message)
	return nil
}

func (g *recorderGit) TagAnnotated(name, message string) error {
	if g.failStep == "tag" {
		return errors.New("tag failed")
	}
	g.tags = append(g.tags, [2]string{name, message})
	return nil
}

// dirtyGit is a recorderGit that also reports uncommitted paths.
type dirtyGit struct {
	recorderGit
	uncommitted []string
}

func (g *dirtyGit) UncommittedPaths() ([]string, error) {
	return g.uncommitted, nil
}

func writeTempStore(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "VERSION")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunPatch(t *testing.T) {
	store := writeTempStore(t, "0.1.0\n")
	git := &recorderGit{}
	var out bytes.Buffer

	meta, err := Run(Options{Store: store, Kind: BumpPatch, Git: git, Out: &out})
	require.NoError(t, err)

	assert.Equal(t, Version{0, 1, 0}, meta.Old)
	assert.Equal(t, Version{0, 1, 1}, meta.New)
	assert.Equal(t, BumpPatch, meta.Kind)
	assert.Equal(t, "v0.1.1", meta.Tag)

	data, err := os.ReadFile(store)
	require.NoError(t, err)
	assert.Equal(t, "0.1.1\n", string(data))

	require.Len(t, git.staged, 1)
	assert.Equal(t, []string{store}, git.staged[0])
	assert.Equal(t, []string{"chore: bump version to 0.1.1"}, git.commits)
	require.Len(t, git.tags, 1)
	assert.Equal(t, [2]string{"v0.1.1", "Release v0.1.1"}, git.tags[0])

	assert.Contains(t, out.String(), "0.1.0 → 0.1.1")
	assert.Contains(t, out.String(), "push the commit and tag")
}

func TestRunMinor(t *testing.T) {
	store := writeTempStore(t, "0.1.0\n")
	git := &recorderGit{}

	meta, err := Run(Options{Store: store, Kind: BumpMinor, Git: git, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.Equal(t, Version{0, 2, 0}, meta.New)
	assert.Equal(t, "v0.2.0", meta.Tag)
	data, err := os.ReadFile(store)
	require.NoError(t, err)
	assert.Equal(t, "0.2.0\n", string(data))
}

func TestRunMajor(t *testing.T) {
	store := writeTempStore(t, "1.9.3\n")
	git := &recorderGit{}

	meta, err := Run(Options{Store: store, Kind: BumpMajor, Git: git, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.Equal(t, Version{2, 0, 0}, meta.New)
	assert.Equal(t, "v2.0.0", meta.Tag)
	require.Len(t, git.tags, 1)
	assert.Equal(t, "Release v2.0.0", git.tags[0][1])
}

func TestRunWhitespaceStore(t *testing.T) {
	store := writeTempStore(t, "  0.1.0\n")
	git := &recorderGit{}

	meta, err := Run(Options{Store: store, Kind: BumpPatch, Git: git, Out: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, Version{0, 1, 0}, meta.Old)
	assert.Equal(t, Version{0, 1, 1}, meta.New)
}

func TestRunDefaultsToPatch(t *testing.T) {
	store := writeTempStore(t, "0.1.0\n")
	git := &recorderGit{}

	meta, err := Run(Options{Store: store, Git: git, Out: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, BumpPatch, meta.Kind)
	assert.Equal(t, Version{0, 1, 1}, meta.New)
}

func TestRunMissingStore(t *testing.T) {
	store := filepath.Join(t.TempDir(), "VERSION")
	git := &recorderGit{}

	_, err := Run(Options{Store: store, Kind: BumpPatch, Git: git, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreNotFound), "expected ErrStoreNotFound, got %v", err)

	// No mutation of any kind.
	_, statErr := os.Stat(store)
	assert.True(t, os.IsNotExist(statErr), "store should remain absent")
	assert.Empty(t, git.staged)
	assert.Empty(t, git.commits)
	assert.Empty(t, git.tags)
}

func TestRunInvalidBumpKind(t *testing.T) {
	store := writeTempStore(t, "0.1.0\n")
	git := &recorderGit{}

	_, err := Run(Options{Store: store, Kind: BumpKind("banana"), Git: git, Out: &bytes.Buffer{}})
	require.Error(t, err)
	var invalid *InvalidBumpKindError
	assert.True(t, errors.As(err, &invalid), "expected InvalidBumpKindError, got %v", err)

	data, readErr := os.ReadFile(store)
	require.NoError(t, readErr)
	assert.Equal(t, "0.1.0\n", string(data), "store must be untouched")
	assert.Empty(t, git.commits)
	assert.Empty(t, git.tags)
}

func TestRunDirtyWorkingTree(t *testing.T) {
	store := writeTempStore(t, "0.1.0\n")
	git := &dirtyGit{uncommitted: []string{"unrelated.txt"}}

	_, err := Run(Options{Store: store, Kind: BumpPatch, Git: git, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrelated.txt")

	data, readErr := os.ReadFile(store)
	require.NoError(t, readErr)
	assert.Equal(t, "0.1.0\n", string(data), "dirty tree must abort before the store write")
}

func TestRunDirtyWorkingTreeAllowsReleaseFiles(t *testing.T) {
	store := writeTempStore(t, "0.1.0\n")
	git := &dirtyGit{uncommitted: []string{store}}

	_, err := Run(Options{Store: store, Kind: BumpPatch, Git: git, Out: &bytes.Buffer{}})
	require.NoError(t, err)
}

// TestRunCommitFailureLeavesStore documents the accepted inconsistency
// window: a git failure after the store write is not rolled back.
func TestRunCommitFailureLeavesStore(t *testing.T) {
	store := writeTempStore(t, "0.1.0\n")
	git := &recorderGit{failStep: "commit"}

	_, err := Run(Options{Store: store, Kind: BumpPatch, Git: git, Out: &bytes.Buffer{}})
	require.Error(t, err)

	data, readErr := os.ReadFile(store)
	require.NoError(t, readErr)
	assert.Equal(t, "0.1.1\n", string(data), "store stays updated after a commit failure")
	assert.Empty(t, git.tags, "no tag after a failed commit")
}

func TestRunTagFailurePropagates(t *testing.T) {
	store := writeTempStore(t, "0.1.0\n")
	git := &recorderGit{failStep: "tag"}

	_, err := Run(Options{Store: store, Kind: BumpPatch, Git: git, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Equal(t, []string{"chore: bump version to 0.1.1"}, git.commits, "commit happens before the tag failure")
}

func TestRunExtraAndBumpFiles(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "VERSION")
	require.NoError(t, os.WriteFile(store, []byte("0.1.0\n"), 0644))
	extra := filepath.Join(dir, "CHANGELOG.md")
	require.NoError(t, os.WriteFile(extra, []byte("# Changelog\n"), 0644))
	manifest := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(manifest, []byte("{\n  \"version\": \"0.1.0\"\n}\n"), 0644))

	git := &recorderGit{}
	meta, err := Run(Options{
		Store:      store,
		Kind:       BumpMinor,
		ExtraFiles: []string{extra},
		BumpFiles:  []string{manifest},
		Git:        git,
		Out:        &bytes.Buffer{},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{store, manifest}, meta.UpdatedFiles)
	require.Len(t, git.staged, 1)
	assert.ElementsMatch(t, []string{store, extra, manifest}, git.staged[0])

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": "0.2.0"`)
}

func TestRunBumpFileWithoutVersionField(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "VERSION")
	require.NoError(t, os.WriteFile(store, []byte("0.1.0\n"), 0644))
	plain := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(plain, []byte("nothing to see\n"), 0644))

	git := &recorderGit{}
	meta, err := Run(Options{Store: store, Kind: BumpPatch, BumpFiles: []string{plain}, Git: git, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	// The file is neither updated nor staged, and the release proceeds.
	assert.Equal(t, []string{store}, meta.UpdatedFiles)
	require.Len(t, git.staged, 1)
	assert.Equal(t, []string{store}, git.staged[0])
}

func TestDryRun(t *testing.T) {
	store := writeTempStore(t, "0.1.0\n")
	git := &recorderGit{}

	meta, err := DryRun(Options{Store: store, Kind: BumpMinor, Git: git, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.Equal(t, Version{0, 1, 0}, meta.Old)
	assert.Equal(t, Version{0, 2, 0}, meta.New)
	assert.Equal(t, "v0.2.0", meta.Tag)
	assert.Equal(t, []string{store}, meta.UpdatedFiles)

	// Nothing touched.
	data, err := os.ReadFile(store)
	require.NoError(t, err)
	assert.Equal(t, "0.1.0\n", string(data))
	assert.Empty(t, git.staged)
	assert.Empty(t, git.commits)
	assert.Empty(t, git.tags)
}

func TestCommitAndTagMessages(t *testing.T) {
	v := Version{Major: 0, Minor: 1, Patch: 1}
	assert.Equal(t, "chore: bump version to 0.1.1", CommitMessage(v))
	assert.Equal(t, "Release v0.1.1", TagMessage(v))
}

func ExampleVersion_Bump() {
	v, _ := ParseVersion("1.9.3")
	next, _ := v.Bump(BumpMajor)
	fmt.Println(next)
	// Output: 2.0.0
}
