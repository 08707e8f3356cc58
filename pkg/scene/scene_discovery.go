package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	TypeBuiltin = "builtin"
	TypeFile    = "file"

	GroupBuiltin = "Built-in Scenes"
	GroupFile    = "Scene Files"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // Display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to scene file (file type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// findScenesDir returns the first scenes directory that exists, or ""
func findScenesDir() string {
	for _, path := range []string{"scenes", "../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListSceneFiles scans the scenes directory for JSON scene files
func ListSceneFiles() ([]SceneInfo, error) {
	scenesDir := findScenesDir()
	if scenesDir == "" {
		return []SceneInfo{}, nil
	}
	return ListSceneFilesIn(scenesDir)
}

// ListSceneFilesIn returns metadata for every *.json file in dir, sorted by
// display name. Files that fail to parse are skipped.
func ListSceneFilesIn(dir string) ([]SceneInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ParseSceneMetadata reads the name, description and group of a scene file,
// falling back to values derived from the file name
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       nameWithoutExt,
		Name:     titleCase(nameWithoutExt),
		Group:    GroupFile,
		Type:     TypeFile,
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return info, err
	}

	if cfg.Name != "" {
		info.Name = cfg.Name
	}
	if cfg.Group != "" {
		info.Group = cfg.Group
	}
	info.Description = cfg.Description
	info.DisplayName = info.Name
	return info, nil
}

// ListAllScenes returns built-in and file scenes, grouped by category with
// the built-in group first
func ListAllScenes() ([]SceneGroup, error) {
	fileScenes, err := ListSceneFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}
	return groupScenes(append(ListBuiltinScenes(), fileScenes...)), nil
}

func groupScenes(all []SceneInfo) []SceneGroup {
	groupMap := make(map[string][]SceneInfo)
	var groupNames []string
	for _, s := range all {
		if _, exists := groupMap[s.Group]; !exists && s.Group != GroupBuiltin {
			groupNames = append(groupNames, s.Group)
		}
		groupMap[s.Group] = append(groupMap[s.Group], s)
	}
	sort.Strings(groupNames)

	var groups []SceneGroup
	if builtInGroup, exists := groupMap[GroupBuiltin]; exists {
		groups = append(groups, SceneGroup{Name: GroupBuiltin, Scenes: builtInGroup})
	}
	for _, name := range groupNames {
		groups = append(groups, SceneGroup{Name: name, Scenes: groupMap[name]})
	}
	return groups
}

// Load resolves a scene by built-in id, scene file path, or the id of a
// file in the scenes directory
func Load(name string) (*Scene, error) {
	s, err := NewBuiltinScene(name)
	if err == nil {
		return s, nil
	}

	if strings.HasSuffix(name, ".json") {
		if _, statErr := os.Stat(name); statErr == nil {
			return LoadSceneFile(name)
		}
	}

	if dir := findScenesDir(); dir != "" {
		path := filepath.Join(dir, name+".json")
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadSceneFile(path)
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", path, statErr)
		}
	}

	return nil, err
}

// titleCase converts a filename-style string to title case
// e.g., "glass-spheres" -> "Glass Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
