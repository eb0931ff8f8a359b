package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateSortPipeline generates a graph to a file and sorts it with
// both variants: the classification must agree.
func TestGenerateSortPipeline(t *testing.T) {
	dir := t.TempDir()
	adjPath := filepath.Join(dir, "adj.json")

	generateFlags.n = 6
	generateFlags.density = 0.3
	generateFlags.weighted = false
	generateFlags.seed = 42
	generateFlags.out = adjPath
	require.NoError(t, runGenerate(&bytes.Buffer{}))

	data, err := os.ReadFile(adjPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"0"`)

	var listOut, matrixOut bytes.Buffer
	sortFlags.in = adjPath
	sortFlags.out = ""

	sortFlags.variant = variantList
	require.NoError(t, runSort(strings.NewReader(""), &listOut))
	sortFlags.variant = variantMatrix
	require.NoError(t, runSort(strings.NewReader(""), &matrixOut))

	listCycle := strings.TrimSpace(listOut.String()) == "CYCLE"
	matrixCycle := strings.TrimSpace(matrixOut.String()) == "CYCLE"
	assert.Equal(t, listCycle, matrixCycle)
}

// TestSort_StdinChain sorts a chain supplied on stdin.
func TestSort_StdinChain(t *testing.T) {
	doc := `{"0": [1], "1": [2], "2": []}`

	var out bytes.Buffer
	sortFlags.in = ""
	sortFlags.out = ""
	sortFlags.variant = variantList
	require.NoError(t, runSort(strings.NewReader(doc), &out))
	assert.Equal(t, "0 1 2\n", out.String())
}

// TestSort_UnknownVariant is rejected.
func TestSort_UnknownVariant(t *testing.T) {
	sortFlags.in = ""
	sortFlags.variant = "heap"
	err := runSort(strings.NewReader("{}"), &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown variant")
}

// TestGenerate_InvalidDensity propagates the builder error.
func TestGenerate_InvalidDensity(t *testing.T) {
	generateFlags.n = 5
	generateFlags.density = -2
	generateFlags.out = ""
	err := runGenerate(&bytes.Buffer{})
	assert.Error(t, err)
}
