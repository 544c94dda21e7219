/*
   VMUTool - Dreamcast Visual Memory image inspector
   Copyright (c) 2026, the VMUTool authors

   This file is part of VMUTool.

   VMUTool is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   VMUTool is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with VMUTool. If not, see <http://www.gnu.org/licenses/>.
*/

package repo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/vmutool/pkg/format"
	"github.com/xelalexv/vmutool/pkg/vms"
)

// reference prefixes
const (
	RefRepo  = "repo://"
	RefHTTP  = "http://"
	RefHTTPS = "https://"
)

// Source is an open image source that knows its name.
type Source interface {
	io.ReadCloser
	Name() string
}

/*
	Resolve opens the image identified by ref. References starting with
	repo:// are resolved relative to the repository directory repo, and must
	not point outside of it. http:// and https:// references are downloaded.
	Anything else is taken as a local file path, unless repo is set, in
	which case only repository references and URLs are permitted.
*/
func Resolve(ctx context.Context, ref, repo string) (Source, error) {

	log.WithFields(log.Fields{"ref": ref, "repo": repo}).Debug("resolving")

	switch {

	case strings.HasPrefix(ref, RefRepo):
		if repo == "" {
			return nil, fmt.Errorf("no repository configured")
		}
		p, err := repoPath(repo, strings.TrimPrefix(ref, RefRepo))
		if err != nil {
			return nil, err
		}
		return openFile(p)

	case strings.HasPrefix(ref, RefHTTP) || strings.HasPrefix(ref, RefHTTPS):
		src, err := NewHTTPSource(ctx, ref)
		if err != nil {
			return nil, err
		}
		return src, nil

	case ref == "":
		return nil, fmt.Errorf("no image reference")

	case repo != "":
		return nil, fmt.Errorf("only repository references and URLs allowed")
	}

	return openFile(ref)
}

//
func openFile(p string) (Source, error) {
	src, err := NewFileSource(p)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// NewFileSource opens the image file at path. Directories and files larger
// than any image, compressed or not, could ever be are rejected.
func NewFileSource(path string) (*FileSource, error) {

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("not an image file: %s is a directory", path)
	}
	if info.Size() > maxDownload {
		return nil, fmt.Errorf("not an image file: %s has %d bytes",
			path, info.Size())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return &FileSource{file: f, reader: bufio.NewReader(f)}, nil
}

// FileSource reads an image from a local file.
type FileSource struct {
	file   *os.File
	reader io.Reader
}

// Name returns the path the file was opened with.
func (fs *FileSource) Name() string {
	return fs.file.Name()
}

//
func (fs *FileSource) Read(p []byte) (n int, err error) {
	return fs.reader.Read(p)
}

//
func (fs *FileSource) Close() error {
	return fs.file.Close()
}
