package git

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// Info is the per-directory git state shown in the listing.
type Info struct {
	Branch   string
	Modified map[string]bool // absolute path -> dirty
}

// Scan returns the branch and modified files for dir, or an empty Info
// when dir is not inside a git repository.
func Scan(dir string) Info {
	info := Info{Modified: make(map[string]bool)}

	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return info
	}
	info.Branch = strings.TrimSpace(string(out))

	cmd = exec.Command("git", "status", "--porcelain")
	cmd.Dir = dir
	out, err = cmd.Output()
	if err != nil {
		return info
	}

	for _, line := range strings.Split(string(out), "\n") {
		if len(line) > 3 {
			name := strings.TrimSpace(line[3:])
			if name != "" {
				info.Modified[filepath.Join(dir, name)] = true
			}
		}
	}

	return info
}
