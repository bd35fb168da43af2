package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pyscribe/internal/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestAnalyzeTree(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "clean.py"),
		"def greet(name):\n    \"\"\"Say hello.\"\"\"\n    return name\n")
	writeFile(t, filepath.Join(dir, "bare.py"),
		"def helper():\n    return 1\n")
	writeFile(t, filepath.Join(dir, "broken.py"),
		"def broken(:\n    pass\n")
	writeFile(t, filepath.Join(dir, "pkg", "nested.py"),
		"class Thing:\n    pass\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not python\n")
	writeFile(t, filepath.Join(dir, "__pycache__", "cached.py"),
		"def ignored():\n    return 1\n")
	writeFile(t, filepath.Join(dir, ".hidden", "secret.py"),
		"def ignored():\n    return 1\n")

	a, err := NewAnalyzer(false, false, "")
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	reports, err := a.Analyze(context.Background(), dir)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	byPath := make(map[string]FileReport, len(reports))
	for _, rep := range reports {
		rel, _ := filepath.Rel(dir, rep.Path)
		byPath[filepath.ToSlash(rel)] = rep
	}

	if len(byPath) != 4 {
		t.Fatalf("analyzed files = %d (%v), want 4", len(byPath), byPath)
	}
	for _, skipped := range []string{"__pycache__/cached.py", ".hidden/secret.py", "notes.txt"} {
		if _, ok := byPath[skipped]; ok {
			t.Errorf("%s should have been skipped", skipped)
		}
	}

	if got := byPath["clean.py"].Issues; len(got) != 0 {
		t.Errorf("clean.py issues = %v, want none", got)
	}

	bare := byPath["bare.py"].Issues
	if len(bare) != 1 || bare[0].Type != types.KindMissingDocstring || bare[0].Name != "helper" {
		t.Errorf("bare.py issues = %v", bare)
	}

	// A parse failure yields one critical issue and does not abort the batch.
	broken := byPath["broken.py"].Issues
	if len(broken) != 1 || broken[0].Type != types.KindSyntaxError || broken[0].Severity != types.SeverityCritical {
		t.Errorf("broken.py issues = %v", broken)
	}

	nested := byPath["pkg/nested.py"].Issues
	if len(nested) != 1 || nested[0].Name != "Thing" {
		t.Errorf("pkg/nested.py issues = %v", nested)
	}
}

func TestAnalyzeSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.py")
	writeFile(t, path, "def f():\n    return 1\n")

	a, err := NewAnalyzer(false, false, "")
	if err != nil {
		t.Fatal(err)
	}

	reports, err := a.Analyze(context.Background(), path)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(reports) != 1 || reports[0].Path != path {
		t.Fatalf("reports = %v", reports)
	}
	if len(reports[0].Issues) != 1 {
		t.Errorf("issues = %v", reports[0].Issues)
	}
}

func TestAnalyzeMissingRoot(t *testing.T) {
	a, err := NewAnalyzer(false, false, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Analyze(context.Background(), filepath.Join(t.TempDir(), "gone")); err == nil {
		t.Fatal("expected error for missing root")
	}
}
