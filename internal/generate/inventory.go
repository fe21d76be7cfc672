package generate

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/shopgen/cli/internal/errors"
)

//go:embed templates/inventory
var inventoryFS embed.FS

const inventoryPort = 5007

// InventoryGenerator emits the inventory service scaffold: a Flask entry
// point stub and the container build file that runs it.
type InventoryGenerator struct{}

// FeatureID implements Generator.
func (InventoryGenerator) FeatureID() string { return "inventory" }

// inventoryData is the substitution data for the inventory templates.
type inventoryData struct {
	ServiceName  string
	ServiceTitle string
	Port         int
}

// Emit implements Generator. Files are written into an inventory/
// subdirectory of outputDir and overwrite any previous scaffold there.
func (InventoryGenerator) Emit(outputDir string) ([]string, error) {
	serviceDir := filepath.Join(outputDir, "inventory")
	if err := os.MkdirAll(serviceDir, 0o755); err != nil {
		return nil, errors.WrapFilesystem(err, "creating service directory")
	}

	data := inventoryData{
		ServiceName:  "inventory",
		ServiceTitle: "Inventory",
		Port:         inventoryPort,
	}

	var created []string
	err := fs.WalkDir(inventoryFS, "templates/inventory", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(inventoryFS, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		name := strings.TrimSuffix(filepath.Base(path), ".tmpl")
		targetPath := filepath.Join(serviceDir, name)

		f, err := os.Create(targetPath)
		if err != nil {
			return errors.WrapFilesystem(err, fmt.Sprintf("creating %s", targetPath))
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}

		created = append(created, filepath.Join("inventory", name))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
