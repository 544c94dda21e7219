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
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xelalexv/vmutool/pkg/format"
	"github.com/xelalexv/vmutool/pkg/repo"
	"github.com/xelalexv/vmutool/pkg/vms"
)

//
func NewCRC() *CRC {

	c := &CRC{}
	c.Runner = NewRunner(
		"crc {image|file} [-b|--block {first block}] [-c|--count {blocks}] [-r|--raw]",
		"calculate VMS checksum",
		`
Use the crc command to calculate the CRC16 checksum as used in VMS file headers,
either over a range of blocks of an image, or with --raw over the complete
content of any file, e.g. an extracted save file.`,
		"", runnerHelpEpilogue, c.Run)

	c.cmd.Args = cobra.ExactArgs(1)
	c.AddSetting(&c.Block, "block", "b", "", 0, "first block", false)
	c.AddSetting(&c.Count, "count", "c", "", 1, "number of blocks", false)
	c.AddSetting(&c.Raw, "raw", "r", "", false,
		"checksum complete file content", false)
	c.AddSetting(&c.LogLevel, "log-level", "", "LOG_LEVEL", "info",
		"log level (trace, debug, info, warn, error)", false)

	return c
}

//
type CRC struct {
	*Runner
	//
	Block int
	Count int
	Raw   bool
}

//
func (c *CRC) Run() error {

	ref := c.Arg(0)
	if IsRemote(ref) {
		return fmt.Errorf("crc needs a local file or URL")
	}

	src, err := repo.Resolve(context.Background(), ref, "")
	if err != nil {
		return err
	}
	defer src.Close()

	crc, err := c.checksum(src)
	if err != nil {
		return err
	}

	fmt.Printf("%04x\n", crc)
	return nil
}

//
func (c *CRC) checksum(src repo.Source) (uint16, error) {

	if c.Raw {
		data, err := io.ReadAll(src)
		if err != nil {
			return 0, err
		}
		return vms.CRC16(data), nil
	}

	_, _, comp := format.SplitNameTypeCompressor(src.Name())
	ir, err := format.NewImageReader(src, comp)
	if err != nil {
		return 0, err
	}

	img, err := ir.ReadImage()
	if err != nil {
		return 0, err
	}

	data, err := img.ReadBlocks(c.Block, c.Count)
	if err != nil {
		return 0, err
	}

	return vms.CRC16(data), nil
}
