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

package util

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// WatchEvent is a change of a single file in a watched tree.
type WatchEvent struct {
	Path    string
	Removed bool
}

/*
	NewDirWatcher creates a recursive watcher for the tree rooted in dir.
	Directories created later on are added to the watch. Only files accepted
	by filter are reported; a nil filter accepts all files. The watcher does
	not report anything until Start has been called.
*/
func NewDirWatcher(dir string, filter func(string) bool) (*DirWatcher, error) {

	if filter == nil {
		filter = func(string) bool { return true }
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ret := &DirWatcher{watcher: w, filter: filter, done: make(chan bool)}

	if err := filepath.Walk(dir, ret.walk); err != nil {
		log.Errorf("error walking directory '%s': %v", dir, err)
		w.Close()
		return nil, err
	}

	return ret, nil
}

//
type DirWatcher struct {
	watcher *fsnotify.Watcher
	filter  func(string) bool
	done    chan bool
	mutex   sync.Mutex
	running bool
}

/*
	Start starts delivering changes to handler. Once no further changes have
	occurred for the backoff duration, flush is called. Handler and flush are
	always called from the same go routine.
*/
func (dw *DirWatcher) Start(backoff time.Duration,
	handler func(WatchEvent) error, flush func() error) error {

	dw.mutex.Lock()
	defer dw.mutex.Unlock()

	if dw.watcher == nil {
		return fmt.Errorf("directory watcher stopped")
	}
	if dw.running {
		return fmt.Errorf("directory watcher already started")
	}
	dw.running = true

	go dw.loop(backoff, handler, flush)
	return nil
}

//
func (dw *DirWatcher) loop(backoff time.Duration,
	handler func(WatchEvent) error, flush func() error) {

	defer close(dw.done)

	var pending <-chan time.Time

	for {
		select {

		case evt, ok := <-dw.watcher.Events:
			if !ok {
				log.Debug("directory watcher routine exiting")
				return
			}
			if e, ok := dw.translate(evt); ok {
				if err := handler(e); err != nil {
					log.Errorf("error in watch event handler: %v", err)
				}
				pending = time.After(backoff)
			}

		case err, ok := <-dw.watcher.Errors:
			if ok {
				log.Errorf("directory watcher error: %v", err)
			}

		case <-pending:
			pending = nil
			if err := flush(); err != nil {
				log.Errorf("error flushing: %v", err)
			}
		}
	}
}

/*
	Stop stops this watcher and waits for its go routine to finish. A stopped
	watcher cannot be started again.
*/
func (dw *DirWatcher) Stop() {

	dw.mutex.Lock()
	defer dw.mutex.Unlock()

	if dw.watcher == nil {
		return
	}

	log.Info("closing directory watcher")
	if err := dw.watcher.Close(); err != nil {
		log.Errorf("could not close file watcher: %v", err)
	}
	if dw.running {
		<-dw.done
	}
	dw.watcher = nil
}

// translate turns a raw event into a file event. Directory creation is
// handled here and not reported.
func (dw *DirWatcher) translate(evt fsnotify.Event) (WatchEvent, bool) {

	log.WithFields(
		log.Fields{"path": evt.Name, "op": evt.Op}).Debug("handling event")

	if evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		return WatchEvent{Path: evt.Name, Removed: true}, dw.filter(evt.Name)
	}

	if evt.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return WatchEvent{}, false
	}

	info, err := os.Stat(evt.Name)
	if err != nil {
		log.Debugf("cannot stat %s: %v", evt.Name, err)
		return WatchEvent{}, false
	}

	if info.IsDir() {
		if evt.Op&fsnotify.Create != 0 {
			dw.walkNew(evt.Name)
		}
		return WatchEvent{}, false
	}

	return WatchEvent{Path: evt.Name}, dw.filter(evt.Name)
}

// walkNew adds a newly created directory tree to the watch.
func (dw *DirWatcher) walkNew(dir string) {
	if err := filepath.Walk(dir, dw.walk); err != nil {
		log.Errorf("error adding directory '%s': %v", dir, err)
	}
}

//
func (dw *DirWatcher) walk(path string, info os.FileInfo, err error) error {

	if err != nil {
		return err
	}

	if info.IsDir() {
		if err := dw.watcher.Add(path); err != nil {
			log.Errorf("error adding watch for directory '%s': %v", path, err)
			return err
		}
		log.WithField("path", path).Debug("starting directory watch")
	}

	return nil
}
