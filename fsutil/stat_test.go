package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStatMissing(t *testing.T) {
	t.Parallel()
	st := Stat(filepath.Join(t.TempDir(), "nope"))
	if st.Exists {
		t.Fatalf("Stat on missing path: Exists = true, want false")
	}
	if st.Errno == 0 {
		t.Fatalf("Stat on missing path: Errno = 0, want ENOENT")
	}
}

func TestStatRegularFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	st := Stat(path)
	if !st.Exists {
		t.Fatalf("Stat on regular file: Exists = false, want true")
	}
	if st.Kind != FileKind {
		t.Fatalf("Kind = %v, want FileKind", st.Kind)
	}
	if st.Size != 5 {
		t.Fatalf("Size = %d, want 5", st.Size)
	}
	if st.IsDirectory() {
		t.Fatalf("IsDirectory() = true, want false")
	}
}

func TestStatDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	st := Stat(dir)
	if !st.IsDirectory() {
		t.Fatalf("IsDirectory() = false, want true for %s", dir)
	}
}

func TestLstatSymlink(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	lst := Lstat(link)
	if lst.Kind != LinkKind {
		t.Fatalf("Lstat Kind = %v, want LinkKind", lst.Kind)
	}

	st := Stat(link)
	if st.Kind != FileKind {
		t.Fatalf("Stat (follows links) Kind = %v, want FileKind", st.Kind)
	}
}

func TestSameInode(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	if err := os.WriteFile(a, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Link(a, b); err != nil {
		t.Skipf("hard links unsupported here: %v", err)
	}

	sa, sb := Stat(a), Stat(b)
	if !SameInode(sa, sb) {
		t.Fatalf("SameInode(a, b) = false, want true for hard-linked files")
	}

	other := filepath.Join(dir, "other")
	if err := os.WriteFile(other, []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}
	so := Stat(other)
	if SameInode(sa, so) {
		t.Fatalf("SameInode(a, other) = true, want false for distinct files")
	}

	if SameInode(StatSnapshot{}, sa) {
		t.Fatalf("SameInode with a non-existent snapshot should be false")
	}
}
