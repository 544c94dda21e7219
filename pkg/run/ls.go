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
func NewLs() *Ls {

	l := &Ls{}
	l.Runner = NewRunner(
		"ls {image}",
		"list files in an image",
		`
Use the ls command to list the files on an image, together with the
descriptions from their file headers. Files with a broken header are listed
with an error.`,
		"", runnerHelpEpilogue, l.Run)

	l.cmd.Args = cobra.ExactArgs(1)
	l.AddBaseSettings()

	return l
}

//
type Ls struct {
	*Runner
}

//
func (l *Ls) Run() error {
	return l.showImage("ls", nil, func(c *vms.Card) error {
		render.WriteFileList(os.Stdout, c)
		return nil
	})
}
