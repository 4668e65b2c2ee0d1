package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/ertrie/model"
	sent "github.com/revelaction/ertrie/sentence"
	"github.com/revelaction/ertrie/storage/filesystem"
)

func exampleDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	lib := model.Library{
		{
			Name:   "chase",
			Tokens: sent.New([]string{"Dogs", "chase", "cats", "."}, []string{"NNS", "VBP", "NNS", "."}).Tokens,
			Template: model.Model{
				Entities: []model.Entity{{WordId: 0, Length: 1}, {WordId: 2, Length: 1}},
				Relationships: []model.Relationship{
					{WordId: 1, Length: 1, Connects: []model.RelationEntity{{EntityId: 0}, {EntityId: 1}}},
				},
			},
		},
		{
			Name:   "sleep",
			Tokens: sent.New([]string{"The", "cat", "sleeps", "."}, []string{"DT", "NN", "VBZ", "."}).Tokens,
			Template: model.Model{
				Entities: []model.Entity{{WordId: 1, Length: 1}},
			},
		},
	}
	require.NoError(t, filesystem.NewExampleStore(dir).Write("pets", lib))
	return dir
}

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	code := run(append([]string{"ertrie", "--quiet", "--no-color", "--log-level", "error"}, args...), UI{Out: &out, Err: &errOut})
	return code, out.String(), errOut.String()
}

func TestVersion(t *testing.T) {
	code, out, _ := runArgs(t, "version")
	require.Equal(t, 0, code)
	assert.Equal(t, "ertrie version dev (commit: none)\n", out)
}

func TestTrain(t *testing.T) {
	code, out, errOut := runArgs(t, "-e", exampleDir(t), "train")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "Trained 2 examples (0 skipped) into 8 nodes, 2 templates\n", out)
}

func TestTrainSkipsMalformedExampleWithPunctuation(t *testing.T) {
	dir := exampleDir(t)
	broken := model.Library{
		{
			Name:   "comma",
			Tokens: sent.New([]string{"a", ",", "b"}, []string{"NN", ",", "NN"}).Tokens,
			Template: model.Model{
				Entities: []model.Entity{{WordId: 2, Length: 5}},
			},
		},
	}
	require.NoError(t, filesystem.NewExampleStore(dir).Write("broken", broken))

	code, out, errOut := runArgs(t, "-e", dir, "train")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "Trained 2 examples (1 skipped) into 8 nodes, 2 templates\n", out)
}

func TestTrainMissingRepository(t *testing.T) {
	code, _, errOut := runArgs(t, "-e", filepath.Join(t.TempDir(), "missing"), "train")
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(errOut, "ertrie: "), errOut)
	assert.Contains(t, errOut, "hint: set --examples")
}

func TestTree(t *testing.T) {
	code, out, errOut := runArgs(t, "-e", exampleDir(t), "tree", "--words")
	require.Equal(t, 0, code, errOut)

	want := "NNS (Dogs)\n  VBP (chase)\n    NNS (cats)\n      . (.) ● 2e 1r\nDT (The)\n  NN (cat)\n    VBZ (sleeps)\n      . (.) ● 1e 0r\n"
	assert.Equal(t, want, out)
}

func TestMatch(t *testing.T) {
	code, out, errOut := runArgs(t, "-e", exampleDir(t), "match", "Birds/NNS", "eat/VBZ", "worms/NNS", "./.")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "Birds eat worms .")
	assert.Contains(t, out, "cost 25  mismatches 0  (approx)")
	assert.Contains(t, out, "↔ 3 eat: birds(1) → worms(2)")
}

func TestMatchApproximate(t *testing.T) {
	code, out, errOut := runArgs(t, "-e", exampleDir(t), "-s", "approx", "-f", "json", "match", "Birds/NNS eat/VBZ worms/NNS ./.")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, `"strategy":"approx"`)
	assert.Contains(t, out, `"cost":25`)
}

func TestMatchNoMatch(t *testing.T) {
	code, out, errOut := runArgs(t, "-e", exampleDir(t), "-s", "strict", "match", "Stop/VB")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "ertrie: ")
	assert.Contains(t, errOut, "no match")
}

func TestMatchWithoutSentence(t *testing.T) {
	code, _, errOut := runArgs(t, "-e", exampleDir(t), "match")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "match requires a sentence")
}

func TestInvalidFlags(t *testing.T) {
	tests := [][]string{
		{"-f", "xml", "version"},
		{"-s", "fuzzy", "version"},
		{"--max-cost", "-1", "version"},
		{"--workers", "0", "version"},
	}

	for _, args := range tests {
		code, _, errOut := runArgs(t, args...)
		assert.Equal(t, 1, code, args)
		assert.Contains(t, errOut, "invalid input", args)
	}
}

func TestParagraphSave(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "pets.txt")
	require.NoError(t, os.WriteFile(doc, []byte("Dogs/NNS chase/VBP cats/NNS ./. The/DT cat/NN sleeps/VBZ ./. Hello/UH ./.\n"), 0o644))
	models := filepath.Join(dir, "models")
	examples := exampleDir(t)

	code, out, errOut := runArgs(t, "-e", examples, "-m", models, "-w", "2", "paragraph", "--save", doc)
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "📄 pets")
	assert.Contains(t, out, "[  2] ✘")
	assert.Contains(t, out, "3 entities (0 merged), 1 relationships (0 merged)")
	assert.Contains(t, errOut, "✔ saved model ")

	code, out, errOut = runArgs(t, "-m", models, "models")
	require.Equal(t, 0, code, errOut)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "pets")

	id := strings.Fields(lines[0])[0]
	code, out, errOut = runArgs(t, "-m", models, "-f", "yaml", "model", id)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "name: cat")
}

func TestParagraphDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("Dogs/NNS chase/VBP cats/NNS ./.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("The/DT dog/NN sleeps/VBZ ./.\n"), 0o644))

	code, out, errOut := runArgs(t, "-e", exampleDir(t), "-f", "json", "paragraph", dir)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, 2, strings.Count(out, `"title":`))
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "examples.db")

	code, _, errOut := runArgs(t, "import", "--from", exampleDir(t), "--to", db)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, errOut, "Successfully imported 2 examples")

	code, out, errOut := runArgs(t, "-e", db, "train")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "Trained 2 examples (0 skipped) into 8 nodes, 2 templates\n", out)

	exported := filepath.Join(dir, "out")
	code, _, errOut = runArgs(t, "export", "--from", db, "--to", exported)
	require.Equal(t, 0, code, errOut)

	lib, err := filesystem.NewExampleStore(exported).Read("pets")
	require.NoError(t, err)
	assert.Len(t, lib, 2)
	assert.Equal(t, "chase", lib[0].Name)
}

func TestStat(t *testing.T) {
	code, out, errOut := runArgs(t, "-e", exampleDir(t), "stat")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "Num examples 2, num tokens per example 4")
	assert.Contains(t, out, "Roots 2, nodes 8, templates 2 (0 internal), max depth 4")
	assert.Contains(t, out, "  .      2\n")
}

func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	code, out, errOut := runArgs(t, "config", "init", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Created default configuration")

	code, out, errOut = runArgs(t, "--config", path, "--max-cost", "30", "config", "show")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, errOut, "Configuration file: "+path)
	assert.Contains(t, out, "max_cost: 30")
	assert.Contains(t, out, "strategy: auto")

	code, _, errOut = runArgs(t, "config", "init", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "already exists")
}
