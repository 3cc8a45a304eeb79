package bumpver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Options configure a release operation.
type Options struct {
	// Store is the path to the version store. Empty means DefaultStore.
	Store string
	// Kind selects which version component to bump. Empty means patch.
	Kind BumpKind
	// ExtraFiles are staged and committed alongside the store.
	ExtraFiles []string
	// BumpFiles are scanned for their main version field, which is rewritten
	// to the new version before committing.
	BumpFiles []string
	// Git is the version-control collaborator. Nil means ExecGit in the
	// process working directory.
	Git Git
	// Out receives operator-facing notices. Nil means os.Stdout.
	Out io.Writer
}

func (o Options) withDefaults() Options {
	if o.Store == "" {
		o.Store = DefaultStore
	}
	if o.Kind == "" {
		o.Kind = BumpPatch
	}
	if o.Git == nil {
		o.Git = &ExecGit{}
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	return o
}

// Meta describes a completed (or simulated) release.
type Meta struct {
	Old          Version
	New          Version
	Kind         BumpKind
	Tag          string
	UpdatedFiles []string
}

// CommitMessage is the commit message recording the bump to v.
func CommitMessage(v Version) string {
	return "chore: bump version to " + v.String()
}

// TagMessage is the annotation message for the release tag of v.
func TagMessage(v Version) string {
	return "Release " + v.TagName()
}

// Run executes a release: it reads the version store, bumps it by opts.Kind,
// writes it back, and records the change as a commit plus an annotated tag.
// Pushing the commit and tag to the shared remote is deliberately left to
// the operator.
//
// Precondition failures (missing store, invalid bump kind, dirty working
// tree) abort before any mutation. A git failure after the store has been
// written is not rolled back; the partial state is left for the operator.
func Run(opts Options) (Meta, error) {
	var meta Meta

	opts = opts.withDefaults()

	if c, ok := opts.Git.(interface{ Check() error }); ok {
		if err := c.Check(); err != nil {
			return meta, err
		}
	}

	old, err := ReadStore(opts.Store)
	if err != nil {
		return meta, err
	}
	meta.Old = old

	next, err := old.Bump(opts.Kind)
	if err != nil {
		return meta, err
	}
	meta.New = next
	meta.Kind = opts.Kind
	meta.Tag = next.TagName()

	if sc, ok := opts.Git.(StatusChecker); ok {
		allowed := append([]string{opts.Store}, opts.ExtraFiles...)
		allowed = append(allowed, opts.BumpFiles...)
		if err := checkWorkingTree(sc, allowed); err != nil {
			return meta, err
		}
	}

	fmt.Fprintf(opts.Out, "Bumping version: %s → %s\n", old, next)

	if err := WriteStore(opts.Store, next); err != nil {
		return meta, err
	}
	meta.UpdatedFiles = append(meta.UpdatedFiles, opts.Store)

	// Secondary references are best-effort: a manifest without a
	// recognizable version field does not abort the release.
	var bumped []string
	for _, bf := range opts.BumpFiles {
		changed, err := BumpFileVersion(bf, next)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to bump version in %s: %v\n", bf, err)
			continue
		}
		if changed {
			bumped = append(bumped, bf)
		}
	}
	meta.UpdatedFiles = append(meta.UpdatedFiles, bumped...)

	toStage := append([]string{opts.Store}, opts.ExtraFiles...)
	toStage = append(toStage, bumped...)
	if err := opts.Git.Stage(toStage...); err != nil {
		return meta, err
	}

	fmt.Fprintf(opts.Out, "Committing version bump\n")
	if err := opts.Git.Commit(CommitMessage(next)); err != nil {
		return meta, err
	}

	fmt.Fprintf(opts.Out, "Tagging %s\n", meta.Tag)
	if err := opts.Git.TagAnnotated(meta.Tag, TagMessage(next)); err != nil {
		return meta, err
	}

	fmt.Fprintf(opts.Out, "Remember to push the commit and tag: git push && git push origin %s\n", meta.Tag)

	return meta, nil
}

// DryRun computes the release metadata and the files a release would touch
// without modifying the store or the repository.
func DryRun(opts Options) (Meta, error) {
	var meta Meta

	opts = opts.withDefaults()

	old, err := ReadStore(opts.Store)
	if err != nil {
		return meta, err
	}
	meta.Old = old

	next, err := old.Bump(opts.Kind)
	if err != nil {
		return meta, err
	}
	meta.New = next
	meta.Kind = opts.Kind
	meta.Tag = next.TagName()

	meta.UpdatedFiles = []string{opts.Store}
	for _, bf := range opts.BumpFiles {
		if _, found, err := FindFileVersion(bf); err == nil && found {
			meta.UpdatedFiles = append(meta.UpdatedFiles, bf)
		}
	}
	return meta, nil
}

// checkWorkingTree ensures only the files being released are modified in the
// working directory.
func checkWorkingTree(sc StatusChecker, allowed []string) error {
	paths, err := sc.UncommittedPaths()
	if err != nil {
		return err
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("failed to resolve path %q: %w", f, err)
		}
		allowedSet[abs] = struct{}{}
	}

	var disallowed []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		if _, ok := allowedSet[abs]; !ok {
			disallowed = append(disallowed, p)
		}
	}

	if len(disallowed) > 0 {
		return fmt.Errorf("working directory is dirty; uncommitted files not included in release: %v", disallowed)
	}
	return nil
}
