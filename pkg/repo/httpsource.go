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
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/xelalexv/vmutool/pkg/vms"
)

// limit for downloads; compressed or not, images are never larger
const maxDownload = 4 * vms.ImageSize

//
func NewHTTPSource(ctx context.Context, ref string) (*HTTPSource, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("cannot download %s: %s", ref, resp.Status)
	}

	name := ref
	if u, err := url.Parse(ref); err == nil {
		name = path.Base(u.Path)
	}

	return &HTTPSource{
		name:     name,
		response: resp,
		reader:   io.LimitReader(resp.Body, maxDownload)}, nil
}

// HTTPSource reads an image from a URL.
type HTTPSource struct {
	name     string
	response *http.Response
	reader   io.Reader
}

// Name returns the last path element of the source URL.
func (hs *HTTPSource) Name() string {
	return hs.name
}

//
func (hs *HTTPSource) Read(p []byte) (n int, err error) {
	return hs.reader.Read(p)
}

//
func (hs *HTTPSource) Close() error {
	return hs.response.Body.Close()
}
