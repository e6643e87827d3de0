// Package levels ships the built-in level files. A file of the same name
// under DiskDir overrides the embedded copy.
package levels

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiskDir is watched for overrides relative to the working directory.
const DiskDir = "levels"

//go:embed *.yaml
var LevelsFS embed.FS

func Load(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(diskLevelPath(clean)); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

// Names lists the embedded levels in play order. Files are numbered so
// lexical order is play order.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func cleanLevelPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, DiskDir+"/")
	if !strings.HasSuffix(s, ".yaml") {
		s += ".yaml"
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(clean))
}
