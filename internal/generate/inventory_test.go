package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryEmitCreatesScaffold(t *testing.T) {
	outputDir := t.TempDir()

	files, err := InventoryGenerator{}.Emit(outputDir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("inventory", "Dockerfile"),
		filepath.Join("inventory", "main.py"),
	}, files)

	for _, f := range files {
		_, err := os.Stat(filepath.Join(outputDir, f))
		assert.NoError(t, err, "expected %s to exist", f)
	}
}

func TestInventoryMainStub(t *testing.T) {
	outputDir := t.TempDir()

	_, err := InventoryGenerator{}.Emit(outputDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, "inventory", "main.py"))
	require.NoError(t, err)
	stub := string(data)

	assert.Contains(t, stub, "Inventory Microservice - Auto-generated file")
	assert.Contains(t, stub, "Built with ShopGen")
	assert.Contains(t, stub, `@app.route("/inventory")`)
	assert.Contains(t, stub, `@app.route("/inventory/product_ids")`)
	assert.Contains(t, stub, `@app.route("/inventory/stock/<product_id>")`)
	assert.Contains(t, stub, `@app.route("/inventory/register", methods=["POST"])`)
	assert.Contains(t, stub, `@app.route("/inventory/delete/<product_id>", methods=["DELETE"])`)
	assert.Contains(t, stub, `app.run(host="0.0.0.0", port=5007)`)
	assert.NotContains(t, stub, "{{", "template placeholders must all be substituted")
}

func TestInventoryDockerfile(t *testing.T) {
	outputDir := t.TempDir()

	_, err := InventoryGenerator{}.Emit(outputDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, "inventory", "Dockerfile"))
	require.NoError(t, err)
	dockerfile := string(data)

	assert.Contains(t, dockerfile, "FROM python:3.9-slim")
	assert.Contains(t, dockerfile, "EXPOSE 5007")
	assert.Contains(t, dockerfile, "RUN pip install flask")
	assert.Contains(t, dockerfile, `"--host=0.0.0.0"`)
	assert.Contains(t, dockerfile, `"--port=5007"`)
	assert.NotContains(t, dockerfile, "{{")
}

func TestInventoryEmitOverwritesExistingScaffold(t *testing.T) {
	outputDir := t.TempDir()

	serviceDir := filepath.Join(outputDir, "inventory")
	require.NoError(t, os.MkdirAll(serviceDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(serviceDir, "main.py"), []byte("stale"), 0o644))

	_, err := InventoryGenerator{}.Emit(outputDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(serviceDir, "main.py"))
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}
