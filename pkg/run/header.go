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

package run

import (
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/xelalexv/vmutool/pkg/render"
	"github.com/xelalexv/vmutool/pkg/vms"
)

//
func NewHeader() *Header {

	h := &Header{}
	h.Runner = NewRunner(
		"header {image} -e|--entry {entry}",
		"show the file header of a file in an image",
		`
Use the header command to show the details of a file, including its file
header. The entry is either given by index as listed by ls (e.g. #003 or 3),
or by name.`,
		"", runnerHelpEpilogue, h.Run)

	h.cmd.Args = cobra.ExactArgs(1)
	h.AddBaseSettings()
	h.AddSetting(&h.Entry, "entry", "e", "", nil, "file index or name", true)

	return h
}

//
type Header struct {
	*Runner
	//
	Entry string
}

//
func (h *Header) Run() error {
	return h.showImage("header", url.Values{"entry": {h.Entry}},
		func(c *vms.Card) error {
			e, err := c.Lookup(h.Entry)
			if err != nil {
				return err
			}
			return render.WriteHeader(os.Stdout, c, e)
		})
}
