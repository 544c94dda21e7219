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

// Annotations hold additional, format specific information about an item.
// The zero value is ready for use.
type Annotations map[string]*Annotation

//
func (a *Annotations) Annotate(key string, value interface{}) {
	if *a == nil {
		*a = make(Annotations)
	}
	(*a)[key] = NewAnnotation(key, value)
}

//
func (a Annotations) GetAnnotation(key string) *Annotation {
	if ret, ok := a[key]; ok {
		return ret
	}
	return NewAnnotation(key, nil)
}

//
func (a Annotations) HasAnnotation(key string) bool {
	_, ok := a[key]
	return ok
}

//
func NewAnnotation(key string, value interface{}) *Annotation {
	return &Annotation{key: key, value: value}
}

//
type Annotation struct {
	key   string
	value interface{}
}

//
func (a *Annotation) Key() string {
	return a.key
}

//
func (a *Annotation) Value() interface{} {
	return a.value
}

//
func (a *Annotation) Bool() bool {
	if v, ok := a.value.(bool); ok {
		return v
	}
	return false
}

//
func (a *Annotation) Int() int {
	if v, ok := a.value.(int); ok {
		return v
	}
	return 0
}

// String returns the annotation value as text, or an empty string if there is
// none. Non-string values are not converted.
func (a *Annotation) String() string {
	if v, ok := a.value.(string); ok {
		return v
	}
	return ""
}
