package fsutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestTraversePostOrder(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "sub"))
	mustWrite(t, filepath.Join(root, "top.txt"))
	mustWrite(t, filepath.Join(root, "sub", "leaf.txt"))

	var visited []string
	var dirIndex, subIndex, leafIndex = -1, -1, -1
	err := Traverse(root, func(path string, isDir bool) error {
		visited = append(visited, path)
		switch path {
		case root:
			dirIndex = len(visited) - 1
		case filepath.Join(root, "sub"):
			subIndex = len(visited) - 1
		case filepath.Join(root, "sub", "leaf.txt"):
			leafIndex = len(visited) - 1
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}

	if leafIndex == -1 || subIndex == -1 || dirIndex == -1 {
		t.Fatalf("did not visit all expected entries: %v", visited)
	}
	if leafIndex > subIndex {
		t.Fatalf("leaf visited after its parent directory: leaf=%d sub=%d", leafIndex, subIndex)
	}
	if subIndex > dirIndex {
		t.Fatalf("child directory visited after root: sub=%d root=%d", subIndex, dirIndex)
	}
}

func TestTraverseOnPlainFile(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	mustWrite(t, file)

	var got []string
	err := Traverse(file, func(path string, isDir bool) error {
		got = append(got, path)
		if isDir {
			t.Fatalf("plain file reported as directory")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if len(got) != 1 || got[0] != file {
		t.Fatalf("visited = %v, want [%s]", got, file)
	}
}

func TestTraverseVisitsRootAndFile(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "stays.txt"))

	var seen []string
	err := Traverse(root, func(path string, isDir bool) error {
		seen = append(seen, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	sort.Strings(seen)
	want := []string{root, filepath.Join(root, "stays.txt")}
	sort.Strings(want)
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
}
