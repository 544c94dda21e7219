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

package render

import (
	"fmt"

	"github.com/xelalexv/vmutool/pkg/vms"
)

// RootView is the JSON form of a root block.
type RootView struct {
	Name        string `json:"name"`
	CustomColor bool   `json:"customColor"`
	Color       string `json:"color,omitempty"`
	Created     string `json:"created"`
	FatBlock    int    `json:"fatBlock"`
	FatSize     int    `json:"fatSize"`
	DirBlock    int    `json:"dirBlock"`
	DirSize     int    `json:"dirSize"`
	IconShape   int    `json:"iconShape"`
	UserBlocks  int    `json:"userBlocks"`
}

//
func NewRootView(c *vms.Card) *RootView {

	r := c.Root()

	ret := &RootView{
		Name:        c.Name(),
		CustomColor: r.CustomColor,
		Created:     r.Created.String(),
		FatBlock:    int(r.FatBlock),
		FatSize:     int(r.FatSize),
		DirBlock:    int(r.DirBlock),
		DirSize:     int(r.DirSize),
		IconShape:   int(r.IconShape),
		UserBlocks:  int(r.UserBlocks),
	}

	if r.CustomColor {
		col := r.Color()
		ret.Color = fmt.Sprintf("rgba(%d, %d, %d, %d)", col.R, col.G, col.B, col.A)
	}

	return ret
}

// FileView is the JSON form of a listed file.
type FileView struct {
	Index          int    `json:"index"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Protected      bool   `json:"protected"`
	Created        string `json:"created"`
	FirstBlock     int    `json:"firstBlock"`
	Blocks         int    `json:"blocks"`
	HeaderBlock    int    `json:"headerBlock"`
	VMSDescription string `json:"vmsDescription,omitempty"`
	DCDescription  string `json:"dcDescription,omitempty"`
	Application    string `json:"application,omitempty"`
	Hidden         bool   `json:"hidden,omitempty"`
	Icons          int    `json:"icons"`
	AnimationSpeed int    `json:"animationSpeed"`
	GraphicType    int    `json:"graphicType"`
	CRC            *int   `json:"crc,omitempty"`
	DataSize       *int   `json:"dataSize,omitempty"`
	Error          string `json:"error,omitempty"`
}

//
func NewFileView(e *vms.DirEntry, h *vms.FileHeader, err error) *FileView {

	ret := &FileView{
		Index:       e.Index,
		Name:        e.Title(),
		Type:        e.TypeName(),
		Protected:   e.IsProtected(),
		Created:     e.Created.String(),
		FirstBlock:  int(e.FirstBlock),
		Blocks:      int(e.Size),
		HeaderBlock: e.HeaderBlock(),
	}

	if err != nil {
		ret.Error = err.Error()
	}

	if h != nil {
		ret.VMSDescription = h.VMSDescription()
		ret.DCDescription = h.DCDescription()
		ret.Application = h.Application()
		ret.Hidden = h.Hidden
		ret.Icons = int(h.Icons)
		ret.AnimationSpeed = int(h.AnimationSpeed)
		ret.GraphicType = int(h.GraphicType)
		if e.IsData() {
			crc, size := int(h.CRC), int(h.DataSize)
			ret.CRC = &crc
			ret.DataSize = &size
		}
	}

	return ret
}

// ListingView is the JSON form of a directory listing.
type ListingView struct {
	Name       string      `json:"name"`
	UserBlocks int         `json:"userBlocks"`
	Free       int         `json:"free"`
	Files      []*FileView `json:"files"`
}

// NewListingView lists c. Per-file errors are reported in the file views;
// only a failure to read the directory itself is returned.
func NewListingView(c *vms.Card) (*ListingView, error) {

	stats, files, err := c.Ls()
	if files == nil && err != nil {
		return nil, err
	}

	ret := &ListingView{
		Name:       c.Name(),
		UserBlocks: stats.UserBlocks(),
		Free:       stats.Free(),
		Files:      make([]*FileView, len(files)),
	}

	for ix, f := range files {
		ret.Files[ix] = NewFileView(f.Entry(), f.Header(), f.Err())
	}

	return ret, nil
}

// FatView is the JSON form of the FAT.
type FatView struct {
	Entries []uint16 `json:"entries"`
	Free    int      `json:"free"`
}

//
func NewFatView(c *vms.Card) (*FatView, error) {
	fat, err := c.FAT()
	if err != nil {
		return nil, err
	}
	return &FatView{
		Entries: fat[:],
		Free:    fat.FreeUserBlocks(int(c.Root().UserBlocks)),
	}, nil
}
