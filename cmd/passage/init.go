package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passage-dev/passage/internal/config"
	"github.com/passage-dev/passage/internal/errors"
)

const shellTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>%NAME%</title>
  <link rel="stylesheet" href="/styles.css">
</head>
<body>
  <nav>
    <a href="/" data-link>Home</a>
    <a href="/about" data-link>About</a>
  </nav>
  <div id="app"></div>
  <script src="/app.js"></script>
</body>
</html>
`

const stylesTemplate = `body {
  font-family: system-ui, sans-serif;
  margin: 0 auto;
  max-width: 60rem;
  padding: 1rem;
}
`

func initCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a new Passage project",
		Long: `Create a passage.json and a starter shell in the given directory.

The directory defaults to the current working directory.

Examples:
  passage init
  passage init my-app
  passage init my-app --name="My App"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir, name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (default: directory name)")

	return cmd
}

func runInit(dir, name string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	if config.Exists(absDir) {
		return errors.Newf(errors.CategoryConfig, "passage.json already exists in %s", absDir).
			WithSuggestion("Remove the existing passage.json to reinitialize")
	}

	if name == "" {
		name = filepath.Base(absDir)
	}

	printBanner()
	info("Creating project %q...", name)

	if err := os.MkdirAll(absDir, 0755); err != nil {
		return err
	}

	cfg := config.New()
	cfg.Name = name
	if err := cfg.SaveTo(filepath.Join(absDir, config.ConfigFileName)); err != nil {
		return err
	}

	publicDir := filepath.Join(absDir, cfg.Static.Dir)
	if err := os.MkdirAll(publicDir, 0755); err != nil {
		return err
	}

	shell := []byte(strings.ReplaceAll(shellTemplate, "%NAME%", name))
	if err := writeIfAbsent(filepath.Join(publicDir, cfg.Build.Shell), shell); err != nil {
		return err
	}
	if err := writeIfAbsent(filepath.Join(publicDir, "styles.css"), []byte(stylesTemplate)); err != nil {
		return err
	}

	success("Created %s", filepath.Join(dir, config.ConfigFileName))
	info("Run 'passage dev' inside the project to start the dev server")
	return nil
}

// writeIfAbsent writes a file unless it already exists.
func writeIfAbsent(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, data, 0644)
}
