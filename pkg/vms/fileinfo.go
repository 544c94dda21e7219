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

package vms

import (
	"github.com/xelalexv/vmutool/pkg/util"
)

//
func newFileInfo(e *DirEntry, h *FileHeader, err error) *FileInfo {

	ret := &FileInfo{entry: e, header: h, err: err}

	ret.Annotate("file-type", e.TypeName())
	ret.Annotate("protected", e.IsProtected())
	if h != nil {
		ret.Annotate("hidden", h.Hidden)
		ret.Annotate("eyecatch", h.HasEyecatch())
		if e.IsData() {
			ret.Annotate("data-size", int(h.DataSize))
		}
	}

	return ret
}

// FileInfo combines a directory entry with its decoded header.
type FileInfo struct {
	entry  *DirEntry
	header *FileHeader
	err    error
	util.Annotations
}

//
func (f *FileInfo) Entry() *DirEntry {
	return f.entry
}

// Header returns the decoded header, nil if decoding failed.
func (f *FileInfo) Header() *FileHeader {
	return f.header
}

// Err returns the error that occurred decoding the header, if any.
func (f *FileInfo) Err() error {
	return f.err
}

//
func (f *FileInfo) Name() string {
	return f.entry.Title()
}

// Size returns the file size in blocks.
func (f *FileInfo) Size() int {
	return int(f.entry.Size)
}
