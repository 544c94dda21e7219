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

package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blevesearch/bleve/v2"
	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/vmutool/pkg/format"
	"github.com/xelalexv/vmutool/pkg/util"
	"github.com/xelalexv/vmutool/pkg/vms"
)

//
const replaceChars = "`~!@#$%^&*_-+=()[]{}|;:',.<>?/\\"

var nameCleaner *strings.Replacer

//
func init() {
	rep := make([]string, 2*len(replaceChars))
	for ix, c := range replaceChars {
		rep[ix*2] = string(c)
		rep[ix*2+1] = " "
	}
	nameCleaner = strings.NewReplacer(rep...)
}

// Entry is the indexed document for one image in the repository. Files are
// kept in directory order, so the position of a file is its entry index.
type Entry struct {
	Name  string
	Files []FileEntry
}

// FileEntry is the indexed part of one file on an image. Text of hidden
// headers is left empty.
type FileEntry struct {
	Name          string
	Description   string
	DCDescription string
	App           string
}

//
func NewIndex(base, repo string) (*Index, error) {

	var err error
	i := &Index{}

	if i.base, err = filepath.Abs(base); err != nil {
		return nil, err
	}
	if i.repo, err = filepath.Abs(repo); err != nil {
		return nil, err
	}

	logger := log.WithFields(log.Fields{"base": i.base, "repo": i.repo})

	if _, err := os.Stat(i.base); err != nil {
		if os.IsNotExist(err) {
			logger.Info("creating new index")
			i.index, err = bleve.New(i.base, bleve.NewIndexMapping())
		}
		if err != nil {
			logger.Errorf("cannot create index: %v", err)
			return nil, err
		}
		logger.Info("new index created")
		i.empty = true

	} else {
		logger.Info("opening index")
		if i.index, err = bleve.Open(i.base); err != nil {
			logger.Errorf("cannot open index: %v", err)
			return nil, err
		}
		logger.Info("index opened")
	}

	i.batch = i.index.NewBatch()
	return i, nil
}

// Index is a search index over the images in a repository directory.
type Index struct {
	base    string
	repo    string
	stopped bool
	//
	index   bleve.Index
	empty   bool
	watcher *util.DirWatcher
	//
	batch      *bleve.Batch
	batchCount int
}

//
func (i *Index) Repo() string {
	return i.repo
}

// Start brings the index up to date with the repository and starts watching
// the repository for changes.
func (i *Index) Start() error {

	start := time.Now()
	log.Info("pruning index")
	if err := i.prune(); err != nil {
		return fmt.Errorf("error pruning index: %v", err)
	}
	log.WithField(
		"duration", time.Since(start)).Info("index pruning finished")

	start = time.Now()
	log.Info("updating index")
	if err := i.update(); err != nil {
		return fmt.Errorf("error updating index: %v", err)
	}
	log.WithField(
		"duration", time.Since(start)).Info("index update finished")

	if err := i.batched(true); err != nil {
		return err
	}

	if err := i.startWatching(); err != nil {
		return fmt.Errorf("error starting repo watcher: %v", err)
	}

	log.Info("index ready")
	return nil
}

//
func (i *Index) Stop() {

	i.stopped = true

	if i.watcher != nil {
		i.watcher.Stop()
	}

	if i.index != nil {
		i.index.Close()
	}
}

//
func (i *Index) prune() error {

	if i.empty {
		return nil
	}

	ix, err := i.index.Advanced()
	if err != nil {
		return err
	}

	rd, err := ix.Reader()
	if err != nil {
		return err
	}
	defer rd.Close()

	docs, err := rd.DocIDReaderAll()
	if err != nil {
		return err
	}
	defer docs.Close()

	for {
		d, err := docs.Next()
		if err != nil {
			return err
		}
		if d == nil {
			return nil
		}
		id, err := rd.ExternalID(d)
		if err != nil {
			return err
		}
		if _, err := os.Stat(filepath.Join(i.repo, id)); os.IsNotExist(err) {
			i.removeEntry(id)
		}
	}
}

//
func (i *Index) update() error {

	var lastMod time.Time
	if !i.empty {
		if store, err := os.Stat(filepath.Join(i.base, "store")); err == nil {
			lastMod = store.ModTime()
			log.Debugf("last index mod time: %v", lastMod)
		}
	}

	i.empty = false

	return filepath.Walk(i.repo,

		func(path string, info os.FileInfo, err error) error {

			if i.stopped {
				return fmt.Errorf("forced exit")
			}

			if err != nil {
				log.Warnf("skipping %s: %v", path, err)
				return nil
			}

			if !info.IsDir() && format.IsImageFile(path) &&
				info.ModTime().After(lastMod) {
				i.addEntry(path)
			}

			return nil
		})
}

//
func (i *Index) startWatching() error {
	log.Info("starting index repo watcher")
	var err error
	if i.watcher, err = util.NewDirWatcher(i.repo, format.IsImageFile); err != nil {
		return err
	}
	return i.watcher.Start(5*time.Second, i.watchEvent, i.flushEvent)
}

//
func (i *Index) watchEvent(evt util.WatchEvent) error {
	log.WithFields(log.Fields{
		"path": evt.Path, "removed": evt.Removed}).Debug("index update")
	if evt.Removed {
		return i.removeEntry(i.makeRelative(evt.Path))
	}
	return i.addEntry(evt.Path)
}

//
func (i *Index) flushEvent() error {
	return i.batched(true)
}

// addEntry indexes the image at path. Images that cannot be decoded are
// indexed by name only.
func (i *Index) addEntry(path string) error {

	rel := i.makeRelative(path)
	logger := log.WithField("file", rel)
	logger.Debug("adding entry to index")

	if err := i.batch.Index(rel, newEntry(path, rel)); err != nil {
		logger.Errorf("failed to batch entry add: %v", err)
		return err
	}

	return i.batched(false)
}

//
func newEntry(path, rel string) *Entry {

	ret := &Entry{Name: nameCleaner.Replace(rel)}
	logger := log.WithField("file", rel)

	card, err := Load(context.Background(), path, "")
	if err != nil {
		logger.Warnf("cannot decode image, indexing by name only: %v", err)
		return ret
	}

	_, files, err := card.Ls()
	if err != nil {
		logger.Warnf("image contains broken entries: %v", err)
	}

	for _, f := range files {
		fe := FileEntry{Name: f.Name()}
		if fe.Name == "" {
			fe.Name = f.Entry().Ref()
		}
		if h := f.Header(); h != nil && !h.Hidden {
			fe.Description = h.VMSDescription()
			fe.DCDescription = h.DCDescription()
			fe.App = h.Application()
		}
		ret.Files = append(ret.Files, fe)
	}

	return ret
}

//
func (i *Index) removeEntry(path string) error {
	log.WithField("file", path).Debug("removing deleted entry from index")
	i.batch.Delete(path)
	return i.batched(false)
}

// This is not thread safe. However, after setting up an index instance, add and
// remove are only ever called from the dir watcher, no concurrency.
func (i *Index) batched(flush bool) error {

	if i.batchCount++; flush || i.batchCount > 100 {
		log.Debug("flushing pending index actions")
		if err := i.index.Batch(i.batch); err != nil {
			log.Errorf("failed to execute index batch: %v", err)
			return err
		}
		i.batch = i.index.NewBatch()
		i.batchCount = 0
	}

	return nil
}

//
func (i *Index) makeRelative(path string) string {
	if rel, err := filepath.Rel(i.repo, path); err == nil &&
		!strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return path
}

// Card loads the image with the given repository relative id.
func (i *Index) Card(ctx context.Context, id string) (*vms.Card, error) {
	return Load(ctx, RefRepo+id, i.repo)
}
