package io

import (
	"path/filepath"
	"testing"

	strings "github.com/orizon-lang/orizon-rt/internal/stdlib/strings"
)

func TestManagedFileWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := OpenManaged(strings.NewStr(path), strings.NewStr("w"))
	if err != nil {
		t.Fatalf("open for write failed: %v", err)
	}

	if err := w.Get().Write(strings.NewStr("line one\nline two\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	w.Release()

	r, err := OpenManaged(strings.NewStr(path), strings.NewStr("r"))
	if err != nil {
		t.Fatalf("open for read failed: %v", err)
	}
	defer r.Release()

	line, err := r.Get().ReadLine()
	if err != nil {
		t.Fatalf("readline failed: %v", err)
	}

	if line.Get().String() != "line one" {
		t.Fatalf("expected %q, got %q", "line one", line.Get().String())
	}
}

func TestManagedFileCloseOnRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.txt")

	f, err := OpenManaged(strings.NewStr(path), strings.NewStr("w"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	mf := f.Get()

	f.Release()

	if f.Get() != nil {
		t.Fatal("expected release to clear the handle")
	}

	if mf.f != nil {
		t.Fatal("expected release to close the underlying file")
	}
}
