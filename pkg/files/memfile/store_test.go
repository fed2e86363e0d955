package memfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/datatug/filepeek/pkg/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(WithTitle("test"))
	require.NoError(t, s.WriteFile("/home/user/a.txt", []byte("hello")))
	require.NoError(t, s.MkdirAll("/home/user/Zeta"))
	require.NoError(t, s.WriteFile("/home/user/.secret", []byte("s")))
	return s
}

func TestStore_Root(t *testing.T) {
	t.Parallel()
	s := NewStore(WithTitle("test"))
	assert.Equal(t, "test", s.RootTitle())
	assert.Equal(t, "mem", s.RootURL().Scheme)
	assert.Equal(t, "memory", NewStore().RootTitle())
}

func TestStore_ReadDir(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	entries, err := s.ReadDir(ctx, "/home/user")
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	assert.Equal(t, []string{"a.txt", "Zeta", ".secret"}, names)
	assert.False(t, entries[0].IsDir())
	assert.True(t, entries[1].IsDir())
	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())

	root, err := s.ReadDir(ctx, "/")
	require.NoError(t, err)
	assert.Len(t, root, 1)

	_, err = s.ReadDir(ctx, "/home/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = s.ReadDir(ctx, "/home/user/a.txt")
	assert.True(t, errors.Is(err, files.ErrNotDir))

	_, err = s.ReadDir(ctx, "/home/user/a.txt/deeper")
	assert.True(t, errors.Is(err, files.ErrNotDir))

	require.NoError(t, s.Deny("/home/user/Zeta"))
	_, err = s.ReadDir(ctx, "/home/user/Zeta")
	assert.True(t, errors.Is(err, fs.ErrPermission))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.ReadDir(cancelled, "/home/user")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestStore_ReadFile(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	data, err := s.ReadFile(ctx, "/home/user/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	data[0] = 'j'
	again, _ := s.ReadFile(ctx, "/home/user/a.txt")
	assert.Equal(t, "hello", string(again))

	_, err = s.ReadFile(ctx, "/home/user/Zeta")
	assert.True(t, errors.Is(err, files.ErrIsDir))

	_, err = s.ReadFile(ctx, "/home/user/none.txt")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	require.NoError(t, s.Deny("/home/user/a.txt"))
	_, err = s.ReadFile(ctx, "/home/user/a.txt")
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestStore_WriteFileReplaces(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.WriteFile("/home/user/a.txt", []byte("bye")))
	data, err := s.ReadFile(context.Background(), "/home/user/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "bye", string(data))

	assert.Error(t, s.WriteFile("/home/user/Zeta", nil))
	assert.Error(t, s.MkdirAll("/home/user/a.txt/sub"))
	assert.Error(t, s.WriteFile("/", nil))
}

func TestStore_Symlink(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Symlink("/home/user/Zeta", "/home/user/to-dir"))
	require.NoError(t, s.Symlink("a.txt", "/home/user/to-file"))
	require.NoError(t, s.Symlink("/nowhere", "/home/user/dangling"))
	require.NoError(t, s.WriteFile("/home/user/Zeta/inner.txt", []byte("x")))

	entries, err := s.ReadDir(ctx, "/home/user")
	require.NoError(t, err)
	for _, e := range entries {
		if e.Name() == "to-dir" {
			assert.Equal(t, os.ModeSymlink, e.Type())
			assert.False(t, e.IsDir())
		}
	}

	info, err := s.Stat(ctx, "/home/user/to-dir")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = s.Stat(ctx, "/home/user/to-file")
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())

	_, err = s.Stat(ctx, "/home/user/dangling")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	inner, err := s.ReadDir(ctx, "/home/user/to-dir")
	require.NoError(t, err)
	assert.Len(t, inner, 1)

	data, err := s.ReadFile(ctx, "/home/user/to-dir/inner.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	require.NoError(t, s.Symlink("loop-b", "/loop-a"))
	require.NoError(t, s.Symlink("loop-a", "/loop-b"))
	_, err = s.Stat(ctx, "/loop-a")
	assert.True(t, errors.Is(err, errTooManyLinks))
}

func TestStore_BreakInfo(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.BreakInfo("/home/user/a.txt", fs.ErrNotExist))

	entries, err := s.ReadDir(ctx, "/home/user")
	require.NoError(t, err)
	_, err = entries[0].Info()
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = s.Stat(ctx, "/home/user/a.txt")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	assert.Error(t, s.BreakInfo("/home/none", fs.ErrNotExist))
	assert.Error(t, s.Deny("/home/none"))
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.Remove("/home/user/Zeta"))
	_, err := s.ReadDir(context.Background(), "/home/user/Zeta")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	assert.True(t, errors.Is(s.Remove("/home/user/Zeta"), fs.ErrNotExist))
	assert.True(t, errors.Is(s.Remove("/"), fs.ErrInvalid))
	assert.Error(t, s.Remove("/nope/x"))
}
