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
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/vmutool/pkg/vms/raw"
)

//
var headerIndex = raw.Index{
	"vmsDesc":     {0x00, fileHeaderTextLength},
	"dcDesc":      {0x10, 2 * fileHeaderTextLength},
	"app":         {0x30, fileHeaderTextLength},
	"icons":       {0x40, 2},
	"animSpeed":   {0x42, 2},
	"graphicType": {0x44, 2},
	"crc":         {0x46, 2},
	"dataSize":    {0x48, 4},
}

// FileHeader is the decoded header block of a file. For the reserved icon
// data file, the text fields are not decoded and Hidden is set.
type FileHeader struct {
	Block          int
	Hidden         bool
	VMSDesc        [fileHeaderTextLength]byte
	DCDesc         [2 * fileHeaderTextLength]byte
	App            [fileHeaderTextLength]byte
	Icons          uint16
	AnimationSpeed uint16
	GraphicType    uint16 // eyecatch type, 0 = none
	CRC            uint16 // only meaningful for data files
	DataSize       uint32 // only meaningful for data files
}

// DecodeHeader decodes the header block of entry e.
func DecodeHeader(img Image, e *DirEntry) (*FileHeader, error) {

	block := e.HeaderBlock()
	if block >= BlockCount {
		return nil, fmt.Errorf("%w: header of %s at block %d (%d + %d)",
			ErrOutOfRange, e.Ref(), block, e.FirstBlock, e.HeaderOffset)
	}

	data, err := img.ReadBlock(block)
	if err != nil {
		return nil, fmt.Errorf("cannot read header of %s: %w", e.Ref(), err)
	}

	b := raw.NewBlock(headerIndex, data)

	ret := &FileHeader{
		Block:          block,
		Hidden:         e.IsIconData(),
		Icons:          b.GetUInt16("icons"),
		AnimationSpeed: b.GetUInt16("animSpeed"),
		GraphicType:    b.GetUInt16("graphicType"),
		CRC:            b.GetUInt16("crc"),
		DataSize:       b.GetUInt32("dataSize"),
	}

	if !ret.Hidden {
		copy(ret.VMSDesc[:], b.GetBytes("vmsDesc"))
		copy(ret.DCDesc[:], b.GetBytes("dcDesc"))
		copy(ret.App[:], b.GetBytes("app"))
	}

	log.WithFields(log.Fields{
		"entry":  e.Ref(),
		"block":  block,
		"hidden": ret.Hidden,
	}).Trace("file header decoded")

	return ret, nil
}

// Encode returns the on-disk form of the fixed header fields, padded to a
// full block.
func (h *FileHeader) Encode() []byte {
	data := make([]byte, BlockSize)
	b := raw.NewBlock(headerIndex, data)
	b.SetBytes("vmsDesc", h.VMSDesc[:], ' ')
	b.SetBytes("dcDesc", h.DCDesc[:], ' ')
	b.SetBytes("app", h.App[:], ' ')
	b.SetUInt16("icons", h.Icons)
	b.SetUInt16("animSpeed", h.AnimationSpeed)
	b.SetUInt16("graphicType", h.GraphicType)
	b.SetUInt16("crc", h.CRC)
	b.SetUInt32("dataSize", h.DataSize)
	return data
}

// VMSDescription returns the description shown in the VMS card menu.
func (h *FileHeader) VMSDescription() string {
	if h.Hidden {
		return HiddenMarker
	}
	return headerText(h.VMSDesc[:])
}

// DCDescription returns the description shown in the boot ROM file manager,
// i.e. both halves of the field joined.
func (h *FileHeader) DCDescription() string {
	if h.Hidden {
		return HiddenMarker
	}
	first, second := h.DCDescriptionHalves()
	return headerText([]byte(first + second))
}

// DCDescriptionHalves returns the two 16 byte halves of the boot ROM
// description as stored.
func (h *FileHeader) DCDescriptionHalves() (string, string) {
	return string(h.DCDesc[:fileHeaderTextLength]),
		string(h.DCDesc[fileHeaderTextLength:])
}

// Application returns the identifier of the application that created the
// file.
func (h *FileHeader) Application() string {
	if h.Hidden {
		return HiddenMarker
	}
	return headerText(h.App[:])
}

//
func (h *FileHeader) HasEyecatch() bool {
	return h.GraphicType != 0
}

//
func headerText(b []byte) string {
	return strings.TrimRight(string(b), " \x00")
}
