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
func NewInfo() *Info {

	i := &Info{}
	i.Runner = NewRunner(
		"info {image}",
		"show root block of an image",
		`
Use the info command to show the card metadata kept in the root block of an
image: color, creation time, and the location of FAT & directory.`,
		"", runnerHelpEpilogue, i.Run)

	i.cmd.Args = cobra.ExactArgs(1)
	i.AddBaseSettings()

	return i
}

//
type Info struct {
	*Runner
}

//
func (i *Info) Run() error {
	return i.showImage("info", nil, func(c *vms.Card) error {
		render.WriteRoot(os.Stdout, c)
		return nil
	})
}
