package shell

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

func zipArchive(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {
	if len(args) < 2 {
		return nil, ErrInsufficientArguments
	}

	archivePath := filepath.Clean(e.session.Normalize(args[0]))

	file, err := e.fs().OpenFile(archivePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, ioFailure(fmt.Sprintf("failed to create %s", args[0]), err)
	}

	w := &archiveWriter{
		fs:   e.fs(),
		zw:   zip.NewWriter(file),
		self: archivePath,
	}

	for _, arg := range args[1:] {
		source := filepath.Clean(e.session.Normalize(arg))

		info, err := e.fs().Stat(source)
		if err != nil {
			e.say("Warning: File not found, skipping: %s", arg)
			continue
		}

		if err := w.add(ctx, source, filepath.Base(source), info, nil); err != nil {
			w.zw.Close()
			file.Close()
			return nil, ioFailure(fmt.Sprintf("failed to write %s", args[0]), err)
		}
	}

	if err := w.zw.Close(); err != nil {
		file.Close()
		return nil, ioFailure(fmt.Sprintf("failed to write %s", args[0]), err)
	}

	if err := file.Close(); err != nil {
		return nil, ioFailure(fmt.Sprintf("failed to write %s", args[0]), err)
	}

	e.say("Successfully created %s", args[0])
	return nil, nil
}

type archiveWriter struct {
	fs   afero.Fs
	zw   *zip.Writer
	self string // the archive being written, never added to itself
}

// add stores source under name. Directories become a "name/" entry followed
// by their children, so empty directories survive a round trip. Symlinks are
// followed; a directory already open higher up the tree is not entered again.
func (w *archiveWriter) add(ctx context.Context, source, name string, info os.FileInfo, parents []os.FileInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if source == w.self {
		return nil
	}

	if !info.IsDir() {
		return w.addFile(source, name, info)
	}

	if revisits(info, parents) {
		return nil
	}

	if _, err := w.zw.Create(name + "/"); err != nil {
		return err
	}

	children, err := afero.ReadDir(w.fs, source)
	if err != nil {
		return err
	}

	parents = append(parents, info)
	for _, child := range children {
		childPath := filepath.Join(source, child.Name())

		// ReadDir reports the link itself
		childInfo, err := w.fs.Stat(childPath)
		if err != nil {
			return err
		}

		if err := w.add(ctx, childPath, path.Join(name, child.Name()), childInfo, parents); err != nil {
			return err
		}
	}

	return nil
}

func (w *archiveWriter) addFile(source, name string, info os.FileInfo) error {
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	dst, err := w.zw.CreateHeader(header)
	if err != nil {
		return err
	}

	src, err := w.fs.Open(source)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(dst, src)
	return err
}

func unzipArchive(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {
	if len(args) < 1 {
		return nil, ErrInsufficientArguments
	}

	archivePath := e.session.Normalize(args[0])

	file, err := e.fs().Open(archivePath)
	if err != nil {
		return nil, ioFailure(fmt.Sprintf("failed to open %s", args[0]), err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, ioFailure(fmt.Sprintf("failed to open %s", args[0]), err)
	}

	zr, err := zip.NewReader(file, info.Size())
	if err != nil {
		return nil, ioFailure(fmt.Sprintf("failed to read %s", args[0]), err)
	}

	root := e.session.Cwd()
	for _, entry := range zr.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := extractEntry(e.fs(), root, entry); err != nil {
			return nil, err
		}
	}

	e.say("Successfully extracted %s", args[0])
	return nil, nil
}

func extractEntry(fs afero.Fs, root string, entry *zip.File) error {
	target := filepath.Join(root, filepath.FromSlash(entry.Name))
	if !within(target, root) {
		return pathError(entry.Name, ErrInvalidPath)
	}

	if strings.HasSuffix(entry.Name, "/") || entry.FileInfo().IsDir() {
		if err := fs.MkdirAll(target, 0755); err != nil {
			return ioFailure(fmt.Sprintf("failed to create %s", entry.Name), err)
		}
		return nil
	}

	if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return ioFailure(fmt.Sprintf("failed to create %s", filepath.Dir(entry.Name)), err)
	}

	perm := entry.Mode().Perm()
	if perm == 0 {
		perm = 0644
	}

	src, err := entry.Open()
	if err != nil {
		return ioFailure(fmt.Sprintf("failed to read %s", entry.Name), err)
	}
	defer src.Close()

	dst, err := fs.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return ioFailure(fmt.Sprintf("failed to write %s", entry.Name), err)
	}

	_, cerr := io.Copy(dst, src)
	closeErr := dst.Close()

	if cerr != nil {
		return ioFailure(fmt.Sprintf("failed to write %s", entry.Name), cerr)
	}
	if closeErr != nil {
		return ioFailure(fmt.Sprintf("failed to write %s", entry.Name), closeErr)
	}

	return nil
}
