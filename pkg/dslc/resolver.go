package dslc

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSystem abstracts the filesystem reads the compiler needs, so tests
// can exercise import resolution and cycle detection without touching
// disk. RealFileSystem is the production implementation.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Exists(path string) bool
	UserHomeDir() (string, error)
}

// RealFileSystem reads from the actual OS filesystem.
type RealFileSystem struct{}

func (RealFileSystem) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (RealFileSystem) UserHomeDir() (string, error) { return os.UserHomeDir() }

// systemStdlibDir is the fixed system-wide search location. It is only
// meaningful on platforms with this kind of shared data directory
// convention; on others it is simply never found.
const systemStdlibDir = "/usr/share/keyrx/stdlib"

// resolveImport resolves a load() path relative to baseDir through the
// cascading search order: relative to baseDir, then baseDir/stdlib, then
// the user's ~/.config/keyrx/stdlib, then the system-wide stdlib dir.
func resolveImport(fs FileSystem, importPath, baseDir string) (string, error) {
	candidates := []string{
		filepath.Join(baseDir, importPath),
		filepath.Join(baseDir, "stdlib", importPath),
	}
	if home, err := fs.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "keyrx", "stdlib", importPath))
	}
	candidates = append(candidates, filepath.Join(systemStdlibDir, importPath))

	for _, c := range candidates {
		if fs.Exists(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("import %q not found; searched %v", importPath, candidates)
}
