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

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xelalexv/vmutool/pkg/run"
)

//
func main() {

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	root := &cobra.Command{
		Use:   "vmutool",
		Short: "Dreamcast Visual Memory image inspector",
		Long: `
vmutool reads images of Dreamcast Visual Memory flash memory cards, and shows
root block, file allocation table, directory, and file headers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		run.NewInfo().Command(),
		run.NewLs().Command(),
		run.NewFat().Command(),
		run.NewHeader().Command(),
		run.NewDump().Command(),
		run.NewCRC().Command(),
		run.NewSearch().Command(),
		run.NewServe().Command(),
		run.NewShell().Command(),
		run.NewVersion().Command(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nerror: %v\n\n", err)
		os.Exit(1)
	}
}
