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

package format

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/vmutool/pkg/vms"
)

// maximum number of bytes read from any image source; anything beyond a
// full image is ignored anyway
const maxImageRead = 4 * vms.ImageSize

//
func NewImageReader(r io.ReadCloser, compressor string) (*ImageReader, error) {

	log.WithField("compressor", compressor).Debug("image reader requested")

	var ret *ImageReader
	var err error

	switch compressor {

	case "gzip":
		fallthrough
	case "gz":
		ret, err = getGZipReader(r)

	case "zip":
		ret, err = getZipReader(r, false)

	case "7z":
		ret, err = getZipReader(r, true)

	case "":
		ret = &ImageReader{r, "", "", ""}
	}

	if ret == nil && err == nil {
		err = fmt.Errorf("unsupported compressor: %s", compressor)
	}

	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"compressor": ret.compressor,
		"name":       ret.name,
		"type":       ret.typ}).Debug("image reader created")

	return ret, nil
}

// ImageReader reads a flash memory image, possibly from a compressed source.
type ImageReader struct {
	readCloser io.ReadCloser
	//
	name       string
	typ        string
	compressor string
}

//
func (r *ImageReader) Read(p []byte) (n int, err error) {
	return r.readCloser.Read(p)
}

//
func (r *ImageReader) Close() error {
	return r.readCloser.Close()
}

// Name returns the name of the image within an archive, if known.
func (r *ImageReader) Name() string {
	return r.name
}

//
func (r *ImageReader) Type() string {
	return r.typ
}

//
func (r *ImageReader) Compressor() string {
	return r.compressor
}

// ReadImage reads the complete image.
func (r *ImageReader) ReadImage() (vms.Image, error) {

	data, err := io.ReadAll(io.LimitReader(r, maxImageRead))
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("empty image")
	}

	log.WithFields(log.Fields{
		"name": r.name, "size": len(data)}).Debug("image read")

	return vms.NewImage(data), nil
}

// LoadCard reads an image from r and decodes its root block. The name is
// used to detect a compressor from the file name extension.
func LoadCard(r io.ReadCloser, name string) (*vms.Card, error) {

	defer r.Close()
	n, _, comp := SplitNameTypeCompressor(name)

	ir, err := NewImageReader(r, comp)
	if err != nil {
		return nil, err
	}
	defer ir.Close()

	img, err := ir.ReadImage()
	if err != nil {
		return nil, err
	}

	if ir.Name() != "" {
		n = ir.Name()
	}

	return vms.NewCard(n, img)
}

//
func getGZipReader(r io.ReadCloser) (*ImageReader, error) {

	gzr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	ret := &ImageReader{readCloser: gzr}
	ret.name, ret.typ, _ = SplitNameTypeCompressor(gzr.Name)
	ret.compressor = "gzip"

	return ret, nil
}

//
func getZipReader(r io.ReadCloser, zip7 bool) (*ImageReader, error) {

	var sponge bytes.Buffer
	size, err := io.Copy(&sponge, io.LimitReader(r, maxImageRead+1))
	r.Close()
	if err != nil {
		return nil, err
	}
	if size > maxImageRead {
		return nil, fmt.Errorf(
			"archive too large, more than %d bytes", maxImageRead)
	}

	ret := &ImageReader{}

	if zip7 {
		zr, err := sevenzip.NewReader(bytes.NewReader(sponge.Bytes()), size)
		if err != nil {
			return nil, err
		}
		if len(zr.File) == 0 {
			return nil, fmt.Errorf("empty 7-zip archive")
		}
		if len(zr.File) > 1 {
			log.Warn("7-zip archive has more than one entry, using first")
		}

		ret.name, ret.typ, _ = SplitNameTypeCompressor(zr.File[0].Name)
		ret.compressor = "7z"
		if ret.readCloser, err = zr.File[0].Open(); err != nil {
			return nil, err
		}

	} else {
		zr, err := zip.NewReader(bytes.NewReader(sponge.Bytes()), size)
		if err != nil {
			return nil, err
		}
		if len(zr.File) == 0 {
			return nil, fmt.Errorf("empty zip archive")
		}
		if len(zr.File) > 1 {
			log.Warn("zip archive has more than one entry, using first")
		}

		ret.name, ret.typ, _ = SplitNameTypeCompressor(zr.File[0].Name)
		ret.compressor = "zip"
		if ret.readCloser, err = zr.File[0].Open(); err != nil {
			return nil, err
		}
	}

	return ret, nil
}

// IsImageFile tells whether file looks like a flash memory image, possibly
// compressed.
func IsImageFile(file string) bool {
	_, typ, _ := SplitNameTypeCompressor(file)
	return typ != ""
}

//
func SplitNameTypeCompressor(file string) (name, typ, compressor string) {

	_, n := filepath.Split(file)

	for {
		ext := filepath.Ext(n)
		if ext == "" {
			name = n
			break
		}

		n = strings.TrimSuffix(n, ext)
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))

		switch ext {

		case "vms":
			fallthrough
		case "vmu":
			fallthrough
		case "bin":
			typ = ext

		case "gz":
			fallthrough
		case "gzip":
			fallthrough
		case "zip":
			fallthrough
		case "7z":
			compressor = ext
		}
	}

	return name, typ, compressor
}
