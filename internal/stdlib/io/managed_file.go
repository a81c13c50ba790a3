package io

import (
	"bufio"
	"os"

	"github.com/orizon-lang/orizon-rt/internal/rt"
	strings "github.com/orizon-lang/orizon-rt/internal/stdlib/strings"
)

// ManagedFile is the managed counterpart to original_source/src/core/io/file.hpp's
// File — an Object whose destructor closes the underlying descriptor.
type ManagedFile struct {
	rt.Base
	name   rt.Ref[*strings.Str]
	f      *os.File
	reader *bufio.Reader
}

// apiConstraint pins the range of internal/rt API versions this package was
// written against; rt_strict builds check it at construction (see
// rt.CheckAPICompatible), the default build does not.
const apiConstraint = ">=1.0.0, <2.0.0"

// OpenManaged mirrors file.hpp's mode switch: "r" read, "w" truncating
// write, "a" append, "r+" read-write without truncation.
func OpenManaged(name rt.Ref[*strings.Str], mode rt.Ref[*strings.Str]) (rt.Ref[*ManagedFile], error) {
	rt.CheckAPICompatible(apiConstraint)

	var (
		flag int
		perm os.FileMode = 0o644
	)

	switch mode.Get().String() {
	case "r":
		flag = os.O_RDONLY
	case "w":
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case "r+":
		flag = os.O_RDWR
	default:
		flag = os.O_RDONLY
	}

	f, err := os.OpenFile(name.Get().String(), flag, perm)
	if err != nil {
		return rt.Ref[*ManagedFile]{}, err
	}

	mf := &ManagedFile{name: name, f: f}
	mf.reader = bufio.NewReader(f)

	// A file's only managed field is its name, a leaf Str, so a file
	// cannot sit on a cycle and there is nothing for the collector to
	// trace here.
	return rt.MakeNoGC[*ManagedFile](mf), nil
}

// OnDestroy implements rt.Destroyer; it is invoked by Ref.Release exactly
// once, when the last strong reference drops. Files are never tracked, so
// the collector does not call it.
func (mf *ManagedFile) OnDestroy() {
	if mf.f != nil {
		_ = mf.f.Close()
		mf.f = nil
	}
}

// Read slurps the remainder of the file, mirroring file.hpp's read(): every
// line terminated by a trailing newline.
func (mf *ManagedFile) Read() (rt.Ref[*strings.Str], error) {
	var content []byte

	for {
		line, err := mf.reader.ReadString('\n')
		content = append(content, line...)

		if len(line) > 0 && line[len(line)-1] != '\n' {
			content = append(content, '\n')
		}

		if err != nil {
			break
		}
	}

	return strings.NewStr(string(content)), nil
}

// ReadLine reads a single line, without the trailing newline.
func (mf *ManagedFile) ReadLine() (rt.Ref[*strings.Str], error) {
	line, err := mf.reader.ReadString('\n')
	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}

	return strings.NewStr(line), err
}

func (mf *ManagedFile) Write(s rt.Ref[*strings.Str]) error {
	_, err := mf.f.WriteString(s.Get().String())
	return err
}
