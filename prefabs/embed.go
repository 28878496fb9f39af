package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// DiskDir is checked before the embedded files so prefabs and scripts can be
// edited while the game runs.
var DiskDir = "prefabs"

// Load returns a prefab file, preferring the copy under DiskDir.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript returns a scene script, preferring the copy under DiskDir.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// settingsFiles hold world and material settings rather than primitives.
var settingsFiles = map[string]bool{
	"world.yaml":     true,
	"materials.yaml": true,
}

// PrimitiveNames lists the primitive prefabs found on disk and embedded,
// without extension.
func PrimitiveNames() ([]string, error) {
	seen := make(map[string]bool)
	add := func(name string) {
		if filepath.Ext(name) != ".yaml" || settingsFiles[name] {
			return
		}
		seen[strings.TrimSuffix(name, ".yaml")] = true
	}

	embedded, err := fs.ReadDir(PrefabsFS, ".")
	if err != nil {
		return nil, err
	}
	for _, e := range embedded {
		add(e.Name())
	}
	if entries, err := os.ReadDir(DiskDir); err == nil {
		for _, e := range entries {
			if !e.IsDir() {
				add(e.Name())
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ModTime reports the modification time of the on-disk copy of name.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "prefabs/")
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "prefabs/")
	s = strings.TrimPrefix(s, "scripts/")
	if filepath.Ext(s) == "" {
		s += ".tengo"
	}
	return "scripts/" + s
}

func diskPath(clean string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(clean))
}
