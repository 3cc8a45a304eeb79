// Package main implements a CLI tool to bump the semantic version stored in
// a plain-text version file, commit the change, and tag it using git.
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	bumpver "github.com/ctavolazzi/bumpver/pkg"
)

func usage() {
	msg := `Usage:
  bumpver [options] [bump-kind]

Bumps the semantic version stored in a version file (default: VERSION),
commits the change as "chore: bump version to <new>", and creates the
annotated tag v<new>. Pushing the commit and tag is left to you.

Examples:
  bumpver            # patch bump
  bumpver minor
  bumpver --store version.txt --file README.md major

Positional arguments:
  [bump-kind]        One of: patch (default), minor, major

Options:
`
	fmt.Fprint(os.Stderr, msg)
	flag.PrintDefaults()
}

func main() {
	store := flag.StringP("store", "s", "", `Path to the version store file (default "VERSION")`)
	configPath := flag.String("config", bumpver.DefaultConfigPath, "Path to the config file")
	extraFiles := flag.StringArray("file", nil, "Additional file to stage and commit. May be repeated.")
	bumpFiles := flag.StringArray("bump-file", nil, "Additional file whose main version field is rewritten. May be repeated.")
	dryRun := flag.Bool("dry", false, "Compute the bump without modifying any files or the repository")
	showVersion := flag.BoolP("version", "v", false, "Show CLI version and exit")
	help := flag.BoolP("help", "h", false, "Show help message and exit")

	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println("bumpver CLI version", Version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one [bump-kind] positional argument is accepted")
		usage()
		os.Exit(1)
	}
	kindArg := ""
	if len(args) == 1 {
		kindArg = args[0]
	}
	kind, err := bumpver.ParseBumpKind(kindArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		usage()
		os.Exit(1)
	}

	cfg, err := bumpver.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	opts := bumpver.Options{
		Store:      *store,
		Kind:       kind,
		ExtraFiles: append(cfg.Files, *extraFiles...),
		BumpFiles:  append(cfg.BumpFiles, *bumpFiles...),
	}
	if opts.Store == "" {
		opts.Store = cfg.Store
	}

	var meta bumpver.Meta
	if *dryRun {
		meta, err = bumpver.DryRun(opts)
	} else {
		meta, err = bumpver.Run(opts)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// Summary
	if *dryRun {
		fmt.Println("Dry run complete — no files were modified.")
	} else {
		fmt.Println("Release complete!")
	}
	fmt.Printf("Old Version: %s\n", meta.Old)
	fmt.Printf("New Version: %s\n", meta.New)
	fmt.Printf("Bump Kind:   %s\n", meta.Kind)

	if len(meta.UpdatedFiles) > 0 {
		if *dryRun {
			fmt.Println("Files that would be updated:")
		} else {
			fmt.Println("Files updated:")
		}
		for _, f := range meta.UpdatedFiles {
			fmt.Printf("  %s\n", f)
		}
	}
}
