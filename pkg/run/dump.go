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
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xelalexv/vmutool/pkg/render"
	"github.com/xelalexv/vmutool/pkg/vms"
)

//
func NewDump() *Dump {

	d := &Dump{}
	d.Runner = NewRunner(
		"dump {image} [-b|--block {block}] [-e|--entry {entry}]",
		"hex dump a block of an image",
		`
Use the dump command to output a hex dump of a single block of an image.
Either give the block number directly, or a file entry, in which case its
header block is dumped. Without either, the root block is dumped.`,
		"", runnerHelpEpilogue, d.Run)

	d.cmd.Args = cobra.ExactArgs(1)
	d.AddBaseSettings()
	d.AddSetting(&d.Block, "block", "b", "", vms.RootBlockIndex,
		"block number (0-255)", false)
	d.AddSetting(&d.Entry, "entry", "e", "", nil,
		"file index or name whose header block to dump", false)

	return d
}

//
type Dump struct {
	*Runner
	//
	Block int
	Entry string
}

//
func (d *Dump) Run() error {

	if d.Entry != "" && d.IsSet("block") {
		return fmt.Errorf("use either block or entry, not both")
	}

	params := url.Values{}
	if d.Entry != "" {
		params.Set("entry", d.Entry)
	} else {
		params.Set("block", strconv.Itoa(d.Block))
	}

	return d.showImage("dump", params, func(c *vms.Card) error {
		block := d.Block
		if d.Entry != "" {
			e, err := c.Lookup(d.Entry)
			if err != nil {
				return err
			}
			block = e.HeaderBlock()
		}
		return render.WriteBlockDump(os.Stdout, c, block)
	})
}
