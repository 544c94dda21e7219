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
	"os"

	"github.com/spf13/cobra"

	"github.com/xelalexv/vmutool/pkg/render"
	"github.com/xelalexv/vmutool/pkg/vms"
)

//
func NewFat() *Fat {

	f := &Fat{}
	f.Runner = NewRunner(
		"fat {image}",
		"show the file allocation table of an image",
		`
Use the fat command to show the file allocation table of an image as a grid
of 16 entries per line. Free blocks are shown as dots, last blocks of a file
as END.`,
		"", runnerHelpEpilogue, f.Run)

	f.cmd.Args = cobra.ExactArgs(1)
	f.AddBaseSettings()

	return f
}

//
type Fat struct {
	*Runner
}

//
func (f *Fat) Run() error {
	return f.showImage("fat", nil, func(c *vms.Card) error {
		render.WriteFAT(os.Stdout, c)
		return nil
	})
}
