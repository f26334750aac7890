package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Spec and script files ship embedded. A copy under DiskDir wins so tuning
// edits and bot changes apply without a rebuild.
var (
	//go:embed *.yaml
	PrefabsFS embed.FS

	//go:embed scripts/*.tengo
	ScriptsFS embed.FS
)

// DiskDir is the directory whose files override the embedded prefabs.
func DiskDir() string {
	return "prefabs"
}

func Load(name string) ([]byte, error) {
	return read(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript reads a tengo script by basename; the extension is optional.
func LoadScript(name string) ([]byte, error) {
	return read(ScriptsFS, cleanScriptPath(name))
}

func read(embedded fs.FS, clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(DiskDir(), filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fs.ReadFile(embedded, clean)
}

func cleanPrefabPath(name string) string {
	s := filepath.ToSlash(name)
	s, _ = strings.CutPrefix(s, DiskDir()+"/")
	return s
}

func cleanScriptPath(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	for _, prefix := range []string{DiskDir() + "/", "scripts/"} {
		s, _ = strings.CutPrefix(s, prefix)
	}
	if path.Ext(s) == "" {
		s += ".tengo"
	}
	return path.Join("scripts", s)
}
