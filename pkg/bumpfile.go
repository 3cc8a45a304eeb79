package bumpver

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// mainPatterns match declarations that are normally the manifest's own
// version rather than a dependency pin: JSON and TOML version fields and
// bare VERSION assignments. Listed in preference order; capture groups are
// (lead)(optional v)(version)(trail).
var mainPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\s*"version"\s*:\s*")(v?)(\d+\.\d+\.\d+)(")`),
	regexp.MustCompile(`^(\s*version\s*=\s*")(v?)(\d+\.\d+\.\d+)(")`),
	regexp.MustCompile(`(?i)^(\s*VERSION\s*[:=]\s*["']?)(v?)(\d+\.\d+\.\d+)(["']?)`),
}

// FindFileVersion reports the main version field currently recorded in the
// file at path, if it has one.
func FindFileVersion(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	for _, re := range mainPatterns {
		for _, line := range lines {
			if m := re.FindStringSubmatch(line); m != nil {
				return m[3], true, nil
			}
		}
	}
	return "", false, nil
}

// BumpFileVersion rewrites the main version field of the file at path to v,
// preserving any "v" prefix the field already used. It reports whether the
// file changed; a file with no recognizable version field is left alone.
func BumpFileVersion(path string, v Version) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	for _, re := range mainPatterns {
		for i, line := range lines {
			m := re.FindStringSubmatchIndex(line)
			if m == nil {
				continue
			}

			lead := line[m[2]:m[3]]
			vmark := line[m[4]:m[5]]
			trail := line[m[8]:m[9]]
			updated := line[:m[2]] + lead + vmark + v.String() + trail + line[m[1]:]
			if updated == line {
				return false, nil
			}

			lines[i] = updated
			if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
				return false, fmt.Errorf("writing %s: %w", path, err)
			}
			return true, nil
		}
	}
	return false, nil
}
