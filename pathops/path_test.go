package pathops

import "testing"

func TestBaseName(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, want string }{
		{"/a/b/c.o", "c.o"},
		{"c.o", "c.o"},
		{"/a/b/", ""},
		{"/", ""},
	}
	for _, tt := range tests {
		if got := BaseName(tt.in); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDirName(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, want string }{
		{"/a/b/c.o", "/a/b"},
		{"c.o", "."},
		{"/c.o", "/"},
	}
	for _, tt := range tests {
		if got := DirName(tt.in); got != tt.want {
			t.Errorf("DirName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBaseAndDirNameReconstruct(t *testing.T) {
	t.Parallel()
	for _, p := range []string{"/a/b/c.o", "/usr/local/bin/gcc", "/x.c"} {
		dir, base := DirName(p), BaseName(p)
		want := p
		if dir == "/" {
			if got := dir + base; got != want {
				t.Errorf("reconstruct(%q) = %q, want %q", p, got, want)
			}
			continue
		}
		if got := dir + "/" + base; got != want {
			t.Errorf("reconstruct(%q) = %q, want %q", p, got, want)
		}
	}
}

func TestGetExtension(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, want string }{
		{"foo.c", ".c"},
		{"foo.tar.gz", ".gz"},
		{"foo", ""},
		{"/a.b/foo", ""},
		{".hidden", ".hidden"},
	}
	for _, tt := range tests {
		if got := GetExtension(tt.in); got != tt.want {
			t.Errorf("GetExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemoveExtensionRoundTrip(t *testing.T) {
	t.Parallel()
	for _, p := range []string{"foo.c", "foo.tar.gz", "foo", "/a.b/foo"} {
		if got := RemoveExtension(p) + GetExtension(p); got != p {
			t.Errorf("RemoveExtension+GetExtension(%q) = %q, want %q", p, got, p)
		}
	}
}

func TestChangeExtension(t *testing.T) {
	t.Parallel()
	if got := ChangeExtension("foo.c", ".o"); got != "foo.o" {
		t.Errorf("ChangeExtension = %q, want foo.o", got)
	}
}

func TestIsAbsolutePath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want bool
	}{
		{"/a/b", true},
		{"a/b", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsAbsolutePath(tt.in); got != tt.want {
			t.Errorf("IsAbsolutePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// S4
func TestCommonDirPrefixLength(t *testing.T) {
	t.Parallel()
	tests := []struct {
		dir, path string
		want      int
	}{
		{"/usr/local", "/usr/local/bin", 10},
		{"/usr/locale", "/usr/local", 4},
		{"/usr/local", "/usr/local", 10},
		{"/", "/etc", 0},
		{"", "/etc", 0},
	}
	for _, tt := range tests {
		if got := CommonDirPrefixLength(tt.dir, tt.path); got != tt.want {
			t.Errorf("CommonDirPrefixLength(%q, %q) = %d, want %d", tt.dir, tt.path, got, tt.want)
		}
	}
}

// S2
func TestNormalizeAbsolutePath(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, want string }{
		{"/a/b/../c/./d//e/..", "/a/c/d"},
		{"/", "/"},
		{"/a/../../b", "/b"},
		{"/a/b/", "/a/b"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := NormalizeAbsolutePath(tt.in); got != tt.want {
			t.Errorf("NormalizeAbsolutePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeAbsolutePathIdempotent(t *testing.T) {
	t.Parallel()
	for _, p := range []string{"/a/b/../c/./d//e/..", "/a/b/c", "/"} {
		once := NormalizeAbsolutePath(p)
		twice := NormalizeAbsolutePath(once)
		if once != twice {
			t.Errorf("not idempotent for %q: once=%q twice=%q", p, once, twice)
		}
	}
}

// S3
func TestGetRelativePath(t *testing.T) {
	t.Parallel()
	tests := []struct{ dir, path, want string }{
		{"/home/u/proj", "/home/u/proj/src/x.c", "src/x.c"},
		{"/home/u/proj/a", "/home/u/proj/b/x", "../b/x"},
		{"/", "/etc", "etc"},
		{"/a/b", "/a/b", "."},
	}
	for _, tt := range tests {
		if got := GetRelativePath(tt.dir, tt.path); got != tt.want {
			t.Errorf("GetRelativePath(%q, %q) = %q, want %q", tt.dir, tt.path, got, tt.want)
		}
	}
}

func TestMatchesDirPrefixOrFile(t *testing.T) {
	t.Parallel()
	tests := []struct {
		prefix, p string
		want      bool
	}{
		{"/a/b", "/a/b", true},
		{"/a/b", "/a/b/c", true},
		{"/a/b", "/a/bc", false},
		{"/a/b/", "/a/b/c", true},
		{"", "/a", false},
	}
	for _, tt := range tests {
		if got := MatchesDirPrefixOrFile(tt.prefix, tt.p); got != tt.want {
			t.Errorf("MatchesDirPrefixOrFile(%q, %q) = %v, want %v", tt.prefix, tt.p, got, tt.want)
		}
	}
}
