package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const manifestName = "gleam.yaml"

// Project is the gleam.yaml manifest: where the frontend left the IR
// artifacts and where the generated Rust crate goes.
type Project struct {
	Name   string `yaml:"name"`
	IRDir  string `yaml:"ir_dir,omitempty"`
	OutDir string `yaml:"out_dir,omitempty"`
}

func defaultProject(name string) Project {
	return Project{Name: name}
}

func (p Project) irDir() string {
	if p.IRDir != "" {
		return p.IRDir
	}
	return "build/ir"
}

func (p Project) outDir() string {
	if p.OutDir != "" {
		return p.OutDir
	}
	return "build/rust"
}

// LoadProject reads the manifest from dir.
func LoadProject(dir string) (Project, error) {
	var p Project
	data, err := os.ReadFile(manifestPath(dir))
	if err != nil {
		return p, fmt.Errorf("reading %s: %w", manifestName, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing %s: %w", manifestName, err)
	}
	if p.Name == "" {
		return p, fmt.Errorf("%s: project name is required", manifestName)
	}
	return p, nil
}

// WriteProject creates a fresh manifest; it refuses to clobber one.
func WriteProject(dir string, p Project) error {
	path := manifestPath(dir)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	out, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

func manifestPath(dir string) string {
	if dir == "" {
		return manifestName
	}
	return dir + string(os.PathSeparator) + manifestName
}
