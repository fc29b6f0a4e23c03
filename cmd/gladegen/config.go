package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gladegen/cmd/gladegen/glade"
)

// appName is the single source of truth for the application name.
// All derived identifiers (env vars, config paths, error messages) are computed from it.
const appName = "gladegen"

// Derived env var names, computed once at init from appName.
var (
	envConfigDir   = strings.ToUpper(appName) + "_CONFIG_DIR"
	envCatalogDirs = strings.ToUpper(appName) + "_CATALOG_DIRS"
)

// resolveConfigDir returns the base config directory for the application.
// Priority: $<APPNAME>_CONFIG_DIR > $XDG_CONFIG_HOME/<appName> > ~/.config/<appName>
func resolveConfigDir() (string, error) {
	if v := os.Getenv(envConfigDir); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// resolveCatalogDirs returns all directories to scan for signal catalog files.
// Order: configDir/catalog → $<APPNAME>_CATALOG_DIRS → flagDirs
func resolveCatalogDirs(configDir string, flagDirs []string) []string {
	dirs := []string{filepath.Join(configDir, "catalog")}
	dirs = append(dirs, splitColon(os.Getenv(envCatalogDirs))...)
	dirs = append(dirs, flagDirs...)
	return dirs
}

// globYAML returns sorted *.yml / *.yaml files in dir.
// Returns nil without error if dir does not exist.
func globYAML(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	return files, nil
}

// splitColon splits a colon-separated string, filtering empty parts.
func splitColon(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ":")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// loadCatalog merges the built-in signal catalog with every user catalog
// file found in the resolved directories. Later files win entry by entry;
// missing directories are silently skipped.
func loadCatalog(flagDirs []string) (*glade.Catalog, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, err
	}
	var overrides []*glade.Catalog
	for _, dir := range resolveCatalogDirs(configDir, flagDirs) {
		files, err := globYAML(dir)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			data, err := os.ReadFile(f)
			if err != nil {
				return nil, fmt.Errorf("catalog file %s: %w", f, err)
			}
			c, err := glade.ParseCatalog(data)
			if err != nil {
				return nil, fmt.Errorf("catalog file %s: %w", f, err)
			}
			debugf("loaded catalog %s (%d entries)", f, c.Len())
			overrides = append(overrides, c)
		}
	}
	return glade.MergeCatalogs(glade.BaseCatalog(), overrides...), nil
}
