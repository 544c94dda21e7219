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

package control

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/vmutool/pkg/repo"
	"github.com/xelalexv/vmutool/pkg/vms"
)

//
type API interface {
	Serve() error
	Stop() error
}

// NewAPI creates the control API for serving images from repository
// directory repository. If index is nil, search is not available.
func NewAPI(port int, repository string, index *repo.Index) API {
	return &api{port: port, repository: repository, index: index}
}

//
type api struct {
	port       int
	repository string
	index      *repo.Index
	server     *http.Server
}

//
func (a *api) Serve() error {

	addr := fmt.Sprintf(":%d", a.port)
	log.WithField("address", addr).Info("API server starting")

	a.server = &http.Server{
		Addr:         addr,
		Handler:      a.router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	if err := a.server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}

	log.Info("API server stopped")
	return nil
}

//
func (a *api) router() *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	addRoute(router, "info", "GET", "/image/info", a.info)
	addRoute(router, "ls", "GET", "/image/ls", a.list)
	addRoute(router, "fat", "GET", "/image/fat", a.fat)
	addRoute(router, "header", "GET", "/image/header", a.header)
	addRoute(router, "dump", "GET", "/image/dump", a.dump)
	addRoute(router, "search", "GET", "/search", a.search)
	addRoute(router, "version", "GET", "/version", a.version)

	return router
}

//
func (a *api) Stop() error {
	if a.server == nil {
		return nil
	}
	log.Info("API server stopping")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.server.Shutdown(ctx)
}

//
func addRoute(r *mux.Router, name, method, pattern string,
	handler http.HandlerFunc) {
	r.Methods(method).Path(pattern).Name(name).Handler(logged(handler, name))
}

//
func logged(h http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		h.ServeHTTP(w, req)
		log.WithFields(log.Fields{
			"method":   req.Method,
			"uri":      req.RequestURI,
			"name":     name,
			"duration": time.Since(start),
		}).Debug("API call")
	})
}

// loadCard loads the image referenced by the ref argument. Errors are
// handled, in which case nil is returned.
func (a *api) loadCard(w http.ResponseWriter, req *http.Request) *vms.Card {

	ref := getArg(req, "ref")
	if ref == "" {
		handleError(fmt.Errorf("no image reference"), http.StatusBadRequest, w)
		return nil
	}

	card, err := repo.Load(req.Context(), ref, a.repository)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if isNotFound(err) {
			status = http.StatusNotFound
		}
		handleError(err, status, w)
		return nil
	}

	return card
}
