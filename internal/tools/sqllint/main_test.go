package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeGo(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLintFile(t *testing.T) {
	dir := t.TempDir()
	path := writeGo(t, dir, "q.go", "package q\n\n"+
		"const QGood = `--sql 0b5f1c9e-7a0e-4a35-9a52-3f4f0f0d7c11\nselect 1`\n\n"+
		"const QMissing = `select 2`\n\n"+
		"const QDup = `--sql 0b5f1c9e-7a0e-4a35-9a52-3f4f0f0d7c11\nselect 3`\n\n"+
		"const NotSQL = \"hello\"\n")

	vs, err := lintFile(path, map[string]markerSite{})
	if err != nil {
		t.Fatalf("lintFile() error: %v", err)
	}
	if len(vs) != 2 {
		t.Fatalf("violations = %+v, want 2", vs)
	}
	if vs[0].name != "QMissing" || !strings.Contains(vs[0].message, "missing") {
		t.Fatalf("first violation = %+v", vs[0])
	}
	if vs[1].name != "QDup" || !strings.Contains(vs[1].message, "duplicate") {
		t.Fatalf("second violation = %+v", vs[1])
	}
}

func TestLintFileDuplicatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeGo(t, dir, "a.go", "package q\n\nconst QA = `--sql 9d2e8f4a-1b3c-4d5e-8f70-112233445566\nselect 1`\n")
	b := writeGo(t, dir, "b.go", "package q\n\nconst QB = `--sql 9d2e8f4a-1b3c-4d5e-8f70-112233445566\nselect 1`\n")

	seen := map[string]markerSite{}
	if vs, err := lintFile(a, seen); err != nil || len(vs) != 0 {
		t.Fatalf("lintFile(a) = %+v, %v", vs, err)
	}
	vs, err := lintFile(b, seen)
	if err != nil || len(vs) != 1 || !strings.Contains(vs[0].message, "a.go") {
		t.Fatalf("lintFile(b) = %+v, %v", vs, err)
	}
}
