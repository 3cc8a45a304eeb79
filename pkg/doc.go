// Package bumpver provides a library for releasing semantic version bumps.
//
// It provides functionalities for:
//   - Reading and writing a plain-text version store holding a single
//     major.minor.patch version.
//   - Parsing version strings into a typed triple with structured errors for
//     malformed content.
//   - Bumping versions by kind (patch, minor, major), never mutating in place.
//   - Recording a release in git: staging the store (plus any extra files),
//     committing with the message "chore: bump version to <new>", and
//     creating the annotated tag v<new>.
//   - Rewriting secondary version references in project manifests such as
//     package.json or Cargo.toml.
//
// The git collaborator is abstracted behind the Git interface so the release
// core can be driven against a fake in tests; ExecGit is the subprocess
// implementation used by the CLI. Pushing the resulting commit and tag is
// intentionally left to the operator.
//
// This library is designed to be used both via the bumpver CLI at the module
// root and as a programmatic API:
//
//	import (
//	    "log"
//	    bumpver "github.com/ctavolazzi/bumpver/pkg"
//	)
//
//	func main() {
//	    meta, err := bumpver.Run(bumpver.Options{Kind: bumpver.BumpMinor})
//	    if err != nil {
//	        log.Fatalf("release failed: %v", err)
//	    }
//	    log.Printf("released %s", meta.Tag)
//	}
package bumpver
