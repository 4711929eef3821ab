package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneScriptExt is the file extension of scene scripts
const SceneScriptExt = ".scene"

// SceneInfo describes a scene that can be rendered
type SceneInfo struct {
	Name        string // Built-in name, or file name without extension
	DisplayName string // Human readable name
	Description string // Optional description
	Type        string // "builtin" or "script"
	FilePath    string // Path to the script (script type only)
}

// ListSceneScripts scans dir for scene scripts. A missing directory yields an
// empty list.
func ListSceneScripts(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*"+SceneScriptExt))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseScriptMetadata(filePath)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ParseScriptMetadata reads the leading comment block of a scene script.
// "# Scene: name" overrides the display name and "# Description: text" sets
// the description. Parsing stops at the first non-comment line.
func ParseScriptMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		Name:        nameWithoutExt,
		DisplayName: titleCase(nameWithoutExt),
		Type:        "script",
		FilePath:    filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, fmt.Errorf("failed to open scene script: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if value, ok := strings.CutPrefix(content, "Scene:"); ok {
			info.DisplayName = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(content, "Description:"); ok {
			info.Description = strings.TrimSpace(value)
		}
	}

	return info, scanner.Err()
}

// ListAllScenes returns the built-in scenes followed by the scripts in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, name := range BuiltinNames() {
		scenes = append(scenes, SceneInfo{
			Name:        name,
			DisplayName: titleCase(name),
			Description: builtinScenes[name].description,
			Type:        "builtin",
		})
	}

	scripts, err := ListSceneScripts(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene scripts: %w", err)
	}
	return append(scenes, scripts...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "glass-bubbles" -> "Glass Bubbles"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
