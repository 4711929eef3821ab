package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/shlex"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SceneScriptParser builds a scene from a line-oriented script. Each line is
// one command split with shell quoting rules; '#' starts a comment. Material
// and pose commands modify the most recently added object.
type SceneScriptParser struct {
	scene    *scene.Scene
	settings scene.Settings
	baseDir  string // Directory mesh paths are resolved against
	last     geometry.Primitive
	logger   core.Logger
}

// NewSceneScriptParser creates a parser for an empty scene. Relative mesh
// paths are resolved against baseDir.
func NewSceneScriptParser(baseDir string, logger core.Logger) *SceneScriptParser {
	return &SceneScriptParser{
		scene:    scene.NewScene(),
		settings: scene.DefaultSettings(),
		baseDir:  baseDir,
		logger:   logger,
	}
}

// LoadSceneScript reads a scene script file
func LoadSceneScript(filename string, logger core.Logger) (*scene.Scene, scene.Settings, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, scene.Settings{}, fmt.Errorf("failed to open scene script: %w", err)
	}
	defer file.Close()

	s, settings, err := ParseSceneScript(file, filepath.Dir(filename), logger)
	if err != nil {
		return nil, scene.Settings{}, fmt.Errorf("failed to load scene %s: %w", filename, err)
	}
	return s, settings, nil
}

// ParseSceneScript parses a scene script from reader
func ParseSceneScript(reader io.Reader, baseDir string, logger core.Logger) (*scene.Scene, scene.Settings, error) {
	parser := NewSceneScriptParser(baseDir, logger)

	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := parser.processLine(scanner.Text()); err != nil {
			return nil, scene.Settings{}, fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, scene.Settings{}, fmt.Errorf("failed to read scene script: %w", err)
	}

	parser.finishObject()
	return parser.scene, parser.settings, nil
}

func (p *SceneScriptParser) processLine(line string) error {
	tokens, err := shlex.Split(line)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	command, args := tokens[0], tokens[1:]
	switch command {
	case "camera":
		values, err := parseFloats(command, args, 7)
		if err != nil {
			return err
		}
		p.settings.Camera = scene.CameraConfig{
			Eye:    core.NewVec3(values[0], values[1], values[2]),
			LookAt: core.NewVec3(values[3], values[4], values[5]),
			FOV:    values[6],
		}
	case "depth":
		if len(args) != 1 {
			return fmt.Errorf("depth takes 1 argument, got %d", len(args))
		}
		depth, err := strconv.Atoi(args[0])
		if err != nil || depth < 0 {
			return fmt.Errorf("invalid depth %q", args[0])
		}
		p.settings.MaxDepth = depth
	case "ambient":
		values, err := parseFloats(command, args, 1)
		if err != nil {
			return err
		}
		p.scene.SetAmbient(values[0])
	case "plane":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return fmt.Errorf("plane takes on or off")
		}
		p.scene.ShowPlane(args[0] == "on")
	case "light":
		values, err := parseFloats(command, args, 3)
		if err != nil {
			return err
		}
		p.scene.AddLight(core.NewVec3(values[0], values[1], values[2]))
	case "sphere":
		values, err := parseFloats(command, args, 4)
		if err != nil {
			return err
		}
		p.addObject(geometry.NewSphere(core.NewVec3(values[0], values[1], values[2]), values[3]))
	case "box":
		values, err := parseFloats(command, args, 6)
		if err != nil {
			return err
		}
		p.addObject(geometry.NewBox(
			core.NewVec3(values[0], values[1], values[2]),
			core.NewVec3(values[3], values[4], values[5]),
		))
	case "mesh":
		if len(args) != 1 {
			return fmt.Errorf("mesh takes a file path")
		}
		path := args[0]
		if !filepath.IsAbs(path) {
			path = filepath.Join(p.baseDir, path)
		}
		mesh, err := LoadTriangleMesh(path, p.logger)
		if err != nil {
			return err
		}
		p.addObject(mesh)
	default:
		return p.processModifier(command, args)
	}
	return nil
}

// processModifier applies a material or pose command to the last object
func (p *SceneScriptParser) processModifier(command string, args []string) error {
	var apply func(values []float64)
	var count int

	switch command {
	case "diffuse":
		count = 3
		apply = p.editMaterial(func(m *material.Material, v []float64) { m.Diffuse = core.NewVec3(v[0], v[1], v[2]) })
	case "specular":
		count = 3
		apply = p.editMaterial(func(m *material.Material, v []float64) { m.Specular = core.NewVec3(v[0], v[1], v[2]) })
	case "albedo":
		count = 4
		apply = p.editMaterial(func(m *material.Material, v []float64) {
			m.DiffuseAlbedo, m.SpecularAlbedo, m.ReflectAlbedo, m.RefractAlbedo = v[0], v[1], v[2], v[3]
		})
	case "shininess":
		count = 1
		apply = p.editMaterial(func(m *material.Material, v []float64) { m.Shininess = v[0] })
	case "refractive":
		count = 1
		apply = p.editMaterial(func(m *material.Material, v []float64) { m.RefractiveIndex = v[0] })
	case "position":
		count = 3
		apply = func(v []float64) { p.last.SetPosition(core.NewVec3(v[0], v[1], v[2])) }
	case "rotation":
		count = 3
		apply = func(v []float64) { p.last.SetRotation(core.NewVec3(v[0], v[1], v[2])) }
	case "scale":
		count = 1
		apply = func(v []float64) { p.last.SetScale(v[0]) }
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	if p.last == nil {
		return fmt.Errorf("%s must follow an object", command)
	}
	values, err := parseFloats(command, args, count)
	if err != nil {
		return err
	}
	apply(values)
	return nil
}

func (p *SceneScriptParser) editMaterial(edit func(m *material.Material, v []float64)) func([]float64) {
	return func(values []float64) {
		m := p.last.Material()
		edit(&m, values)
		p.last.SetMaterial(m)
	}
}

// addObject finishes the previous object and starts a new one
func (p *SceneScriptParser) addObject(object geometry.Primitive) {
	p.finishObject()
	p.scene.AddObject(object)
	p.last = object
}

// finishObject applies pending pose edits to the last object
func (p *SceneScriptParser) finishObject() {
	if p.last != nil {
		p.last.Update()
	}
}

func parseFloats(command string, args []string, count int) ([]float64, error) {
	if len(args) != count {
		return nil, fmt.Errorf("%s takes %d arguments, got %d", command, count, len(args))
	}
	values := make([]float64, count)
	for i, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid number %q", command, arg)
		}
		values[i] = value
	}
	return values, nil
}
