package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/schurhammer/gleam/ast"
	"github.com/schurhammer/gleam/rust"
)

const irSuffix = ".ir.json"

func main() {
	app := &cli.App{
		Name:  "gleam",
		Usage: "rust backend for the gleam compiler",
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "write a gleam.yaml manifest in the current directory",
				ArgsUsage: "<project name>",
				Action:    initAction,
			},
			{
				Name:  "build",
				Usage: "emit a rust crate from the project's IR artifacts",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "dump-ir", Usage: "print each decoded module IR to stderr"},
					&cli.BoolFlag{Name: "compile", Usage: "run rustc on the emitted crate"},
				},
				Action: buildAction,
			},
			{
				Name:      "emit",
				Usage:     "emit rust source for a single IR artifact to stdout",
				ArgsUsage: "<module.ir.json>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write to a file instead of stdout"},
				},
				Action: emitAction,
			},
			{
				Name:  "version",
				Usage: "print version information",
				Action: func(c *cli.Context) error {
					printVersion()
					return nil
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		tracerr.PrintSourceColor(err)
		os.Exit(1)
	}
}

func initAction(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("no project name provided")
	}
	if err := WriteProject("", defaultProject(name)); err != nil {
		return tracerr.Wrap(err)
	}
	fmt.Printf("created %s for project %s\n", manifestName, name)
	return nil
}

func buildAction(c *cli.Context) error {
	project, err := LoadProject("")
	if err != nil {
		return tracerr.Wrap(err)
	}

	modules, err := loadModules(project.irDir(), c.Bool("dump-ir"))
	if err != nil {
		return tracerr.Wrap(err)
	}
	if len(modules) == 0 {
		return fmt.Errorf("no %s artifacts under %s", irSuffix, project.irDir())
	}

	// Render everything before writing anything: a module that fails to
	// emit must not leave partial output for the rust toolchain.
	sources := make(map[string]string, len(modules))
	names := make([]string, 0, len(modules))
	for _, m := range modules {
		src, err := rust.Emit(m)
		if err != nil {
			return tracerr.Wrap(fmt.Errorf("emitting module %s: %w", m.Name, err))
		}
		sources[m.Name] = src
		names = append(names, m.Name)
	}

	outDir := project.outDir()
	err = withOutputLock(outDir, func() error {
		if err := writeCrateFile(outDir, "prelude.rs", rust.Prelude); err != nil {
			return err
		}
		if err := writeCrateFile(outDir, "lib.rs", rust.CrateRoot(names)); err != nil {
			return err
		}
		for _, name := range names {
			file := strings.ReplaceAll(name, "/", "_") + ".rs"
			if err := writeCrateFile(outDir, file, sources[name]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return tracerr.Wrap(err)
	}
	fmt.Printf("emitted %d modules to %s\n", len(names), outDir)

	if c.Bool("compile") {
		if err := compileCrate(outDir, project.Name); err != nil {
			return tracerr.Wrap(err)
		}
		fmt.Printf("compiled crate %s\n", project.Name)
	}
	return nil
}

func emitAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("no IR artifact provided")
	}
	m, err := loadModule(path)
	if err != nil {
		return tracerr.Wrap(err)
	}
	src, err := rust.Emit(m)
	if err != nil {
		return tracerr.Wrap(fmt.Errorf("emitting module %s: %w", m.Name, err))
	}
	if out := c.String("output"); out != "" {
		return os.WriteFile(out, []byte(src), 0644)
	}
	fmt.Print(src)
	return nil
}

// loadModules decodes every IR artifact under dir, in stable name order.
func loadModules(dir string, dump bool) ([]*ast.Module, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading IR dir %s: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), irSuffix) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	var modules []*ast.Module
	for _, path := range paths {
		m, err := loadModule(path)
		if err != nil {
			return nil, err
		}
		if dump {
			fmt.Fprintln(os.Stderr, repr.String(m, repr.Indent("  ")))
		}
		modules = append(modules, m)
	}
	return modules, nil
}

func loadModule(path string) (*ast.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m, err := ast.DecodeModule(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return m, nil
}

// compileCrate hands the emitted crate to rustc. Final compilation belongs
// to the rust toolchain; this is a convenience check, not a build system.
func compileCrate(outDir, name string) error {
	libRS := filepath.Join(outDir, "src", "lib.rs")
	args := []string{
		"--edition=2021",
		"--crate-type=lib",
		"--crate-name", strings.ReplaceAll(name, "-", "_"),
		"--out-dir", outDir,
		libRS,
	}
	cmd := exec.Command("rustc", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("rustc failed on %s: %w", libRS, err)
	}
	return nil
}
