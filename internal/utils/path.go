package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds dictionary, table and config files relative to the
// places a user is likely to keep them
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a resolver rooted at the running executable
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "spellfix")
		}
		return filepath.Join(homeDir, ".config", "spellfix")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "spellfix")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "spellfix")
	default:
		return filepath.Join(homeDir, ".config", "spellfix")
	}
}

// ConfigDir returns the platform config directory
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}

// ResolveFile finds name by trying, in order: the path as given, relative to
// the executable, and under the config dir's data/ folder.
func (pr *PathResolver) ResolveFile(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty file name")
	}
	candidates := []string{name}
	if !filepath.IsAbs(name) {
		candidates = append(candidates,
			filepath.Join(pr.executableDir, name),
			filepath.Join(pr.configDir, "data", name),
		)
	}
	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Resolved %s -> %s", name, path)
			return path, nil
		}
		log.Debugf("File candidate not found: %s", path)
	}
	return "", fmt.Errorf("file %s not found: %w", name, os.ErrNotExist)
}
