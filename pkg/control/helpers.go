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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

//
func getArg(req *http.Request, arg string) string {
	return strings.TrimSpace(req.URL.Query().Get(arg))
}

//
func getIntArg(req *http.Request, arg string, def int) (int, error) {
	a := getArg(req, arg)
	if a == "" {
		return def, nil
	}
	ret, err := strconv.Atoi(a)
	if err != nil {
		return def, fmt.Errorf("invalid value for %s: %s", arg, a)
	}
	return ret, nil
}

//
func wantsJSON(req *http.Request) bool {
	return strings.Contains(req.Header.Get("Accept"), "application/json")
}

//
func isNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

//
func handleError(e error, statusCode int, w http.ResponseWriter) bool {
	if e == nil {
		return false
	}
	log.Errorf("%v", e)
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	w.WriteHeader(statusCode)
	if _, err := io.WriteString(w, fmt.Sprintf("%v\n", e)); err != nil {
		log.Errorf("problem writing error: %v", err)
	}
	return true
}

//
func sendReply(body []byte, statusCode int, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Errorf("problem writing reply: %v", err)
	}
}

//
func sendJSONReply(obj interface{}, statusCode int, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		log.Errorf("problem writing JSON reply: %v", err)
	}
}

//
func sendStreamReply(r io.Reader, statusCode int, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	w.WriteHeader(statusCode)
	if _, err := io.Copy(w, r); err != nil {
		log.Errorf("problem streaming reply: %v", err)
	}
}
