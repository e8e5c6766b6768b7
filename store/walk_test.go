package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForEachLevel1SubdirOrderAndProgress(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	var visitedOrder []string
	var lastProgress float64
	err := ForEachLevel1Subdir(root, func(subdir string, progress ProgressFunc) error {
		visitedOrder = append(visitedOrder, filepath.Base(subdir))
		progress(0.5)
		return nil
	}, func(fraction float64) {
		require.GreaterOrEqual(t, fraction, lastProgress)
		lastProgress = fraction
	})
	require.NoError(t, err)

	require.Len(t, visitedOrder, 16)
	want := "0123456789abcdef"
	for i, name := range visitedOrder {
		require.Equal(t, string(want[i]), name)
	}
	require.Equal(t, 1.0, lastProgress)
}

func TestForEachLevel1SubdirPropagatesError(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	boom := os.ErrInvalid

	calls := 0
	err := ForEachLevel1Subdir(root, func(subdir string, progress ProgressFunc) error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	}, nil)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 3, calls)
}

func TestGetLevel1FilesSkipsReservedNames(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	mustTouch(t, filepath.Join(dir, "CACHEDIR.TAG"))
	mustTouch(t, filepath.Join(dir, "stats"))
	mustTouch(t, filepath.Join(dir, ".nfs0000001"))
	mustTouch(t, filepath.Join(dir, "keep.o"))

	files, err := GetLevel1Files(dir, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "keep.o", filepath.Base(files[0].Path))
}

func TestGetLevel1FilesWalksLevel2Subdirs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	mustMkdir(t, filepath.Join(dir, "a"))
	mustMkdir(t, filepath.Join(dir, "b"))
	mustTouch(t, filepath.Join(dir, "a", "f1.o"))
	mustTouch(t, filepath.Join(dir, "b", "f2.o"))
	mustTouch(t, filepath.Join(dir, "b", "stats"))

	var progressValues []float64
	files, err := GetLevel1Files(dir, func(fraction float64) {
		progressValues = append(progressValues, fraction)
	})
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.NotEmpty(t, progressValues)
	require.Equal(t, 1.0, progressValues[len(progressValues)-1])
}

func TestGetLevel1FilesMissingDirIsEmpty(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "absent")

	files, err := GetLevel1Files(dir, nil)
	require.NoError(t, err)
	require.Nil(t, files)
}

func mustTouch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}
