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
	"errors"
)

//
const (
	BlockSize  = 512
	BlockCount = 256
	ImageSize  = BlockSize * BlockCount

	RootBlockIndex = 255

	// nominal layout of a freshly formatted card
	DefaultFatBlock      = 254
	DefaultFatSize       = 1
	DefaultDirBlock      = 253
	DefaultDirSize       = 13
	DefaultUserBlocks    = 200
	DirEntryLength       = 32
	DirEntriesPerBlock   = BlockSize / DirEntryLength
	FatEntryCount        = BlockCount
	FormatMarker         = 0x55
	FormatMarkerLength   = 16
	IconDataName         = "ICONDATA_VMS"
	HiddenMarker         = "<hidden>"
	fileNameLength       = 12
	fileHeaderTextLength = 16
)

// Error kinds. Concrete errors wrap one of these and can be matched with
// errors.Is.
var (
	// ErrNotFormatted is returned when the root block does not carry the
	// format marker. No further decoding is possible for such an image.
	ErrNotFormatted = errors.New("not formatted")
	// ErrOutOfRange is returned when a computed block index is beyond the
	// last block.
	ErrOutOfRange = errors.New("block index out of range")
	// ErrTruncated is returned when the image is too short for a requested
	// block.
	ErrTruncated = errors.New("image truncated")
)
