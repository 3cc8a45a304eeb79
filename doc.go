// Package main implements the bumpver CLI tool.
//
// The bumpver tool automates the release ritual for projects that keep their
// semantic version in a plain-text file. It reads the version from the store
// (default "VERSION"), bumps it according to the given kind ("patch",
// "minor", or "major"; patch when omitted), overwrites the store, stages the
// change, commits it with the message "chore: bump version to <new>", and
// creates the annotated tag "v<new>" with the message "Release v<new>". The
// push to the shared remote is left to the operator and a reminder is
// printed instead.
//
// Command Usage:
//
//	bumpver [flags] [bump-kind]
//
// Flags:
//
//	--store, -s:   Path to the version store file. (Defaults to "VERSION")
//	--config:      Path to the config file. (Defaults to ".bumpver.yaml")
//	--file:        Additional file to stage and commit with the release.
//	               May be repeated.
//	--bump-file:   Additional file whose main version field (package.json,
//	               Cargo.toml, VERSION assignments) is rewritten to the new
//	               version. May be repeated.
//	--dry:         Compute the bump and report what would change without
//	               modifying any files or the git repository.
//	--version, -v: Show the bumpver CLI's own version and exit.
//
// Examples:
//
//	# Bump the patch version (e.g. 0.1.0 → 0.1.1)
//	bumpver
//	bumpver patch
//
//	# Bump the minor version (e.g. 0.1.0 → 0.2.0)
//	bumpver minor
//
//	# Bump the major version (e.g. 1.9.3 → 2.0.0)
//	bumpver major
//
//	# Keep a package.json in step and include the changelog in the commit
//	bumpver --bump-file package.json --file CHANGELOG.md minor
//
// A repository may also carry a .bumpver.yaml declaring the store path and
// the extra/bump files, so releases are plain `bumpver <kind>` invocations:
//
//	store: VERSION
//	files: [CHANGELOG.md]
//	bump_files: [package.json]
//
// Exit status is 0 on success and 1 on any failure: a missing version store,
// a malformed stored version, an unrecognized bump kind, or a git error.
// Precondition failures abort before anything is written; a git failure
// after the store has been overwritten leaves the store updated for the
// operator to inspect.
//
// For the programmatic API, see the documentation of the "pkg" package.
package main
