package holidays

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFromFile reads a holiday JSON file into a Table.
func LoadFromFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read holidays file: %w", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse holidays JSON: %w", err)
	}

	table := make(Table, len(file))
	for _, year := range file {
		table[year.Year] = year.Holiday
	}
	return table, nil
}

// CachePath returns the default holidays file in the user cache directory.
func CachePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get cache directory: %w", err)
	}
	return filepath.Join(cacheDir, "rangecal", "holidays.json"), nil
}

// Load reads path, or the cache file when path is empty. A missing cache
// file yields an empty table and no error.
func Load(path string) (Table, error) {
	if path != "" {
		return LoadFromFile(path)
	}
	cachePath, err := CachePath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(cachePath); os.IsNotExist(err) {
		return Table{}, nil
	}
	return LoadFromFile(cachePath)
}

// Lookup returns the annotation for a day, or nil.
func (t Table) Lookup(year, month, day int) *Info {
	if t == nil {
		return nil
	}
	days, ok := t[fmt.Sprintf("%d", year)]
	if !ok {
		return nil
	}
	entry, ok := days[fmt.Sprintf("%02d-%02d", month, day)]
	if !ok || entry == nil {
		return nil
	}
	return &Info{
		IsHoliday: entry.Holiday,
		Name:      entry.Name,
	}
}
