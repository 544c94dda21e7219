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
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/vmutool/pkg/control"
	"github.com/xelalexv/vmutool/pkg/repo"
)

//
func NewServe() *Serve {

	s := &Serve{}
	s.Runner = NewRunner(
		"serve -r|--repo {repository} [-x|--index {index dir}] [-p|--port {port}]",
		"serve images from a repository",
		`
Use the serve command to start a server that serves decoded views of the
images in a repository directory via HTTP. If an index directory is given,
the repository is indexed for searching, and the index is kept up to date
while the server runs.`,
		"", runnerHelpEpilogue, s.Run)

	s.AddBaseSettings()
	s.AddSetting(&s.Repo, "repo", "r", "VMUTOOL_REPO", nil,
		"repository directory holding images", true)
	s.AddSetting(&s.Index, "index", "x", "VMUTOOL_INDEX", "",
		"search index directory; no search if not set", false)
	s.AddSetting(&s.Port, "port", "p", "VMUTOOL_PORT", 8888,
		"port to listen on", false)

	return s
}

//
type Serve struct {
	*Runner
	//
	Repo  string
	Index string
	Port  int
}

//
func (s *Serve) Run() error {

	if info, err := os.Stat(s.Repo); err != nil {
		return err
	} else if !info.IsDir() {
		return fmt.Errorf("repository is not a directory: %s", s.Repo)
	}

	var index *repo.Index
	if s.Index != "" {
		var err error
		if index, err = repo.NewIndex(s.Index, s.Repo); err != nil {
			return err
		}
		defer index.Stop()
		if err := index.Start(); err != nil {
			return err
		}
	}

	api := control.NewAPI(s.Port, s.Repo, index)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signals
		log.WithField("signal", sig).Info("shutting down")
		if err := api.Stop(); err != nil {
			log.Errorf("error stopping API server: %v", err)
		}
	}()

	return api.Serve()
}
