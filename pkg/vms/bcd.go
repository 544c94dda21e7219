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

package vms

import (
	"fmt"
	"time"
)

// TimestampLength is the size of an encoded timestamp.
const TimestampLength = 8

// Timestamp is a creation time as stored on the card. Each field holds two
// packed decimal digits. Decoding does not validate the digits.
type Timestamp struct {
	Century byte
	Year    byte
	Month   byte
	Day     byte
	Hour    byte
	Minute  byte
	Second  byte
	Weekday byte // 0 = Monday
}

// DecodeTimestamp decodes the first eight bytes of b.
func DecodeTimestamp(b []byte) (Timestamp, error) {
	if len(b) < TimestampLength {
		return Timestamp{}, fmt.Errorf(
			"timestamp needs %d bytes, got %d", TimestampLength, len(b))
	}
	return Timestamp{
		Century: b[0],
		Year:    b[1],
		Month:   b[2],
		Day:     b[3],
		Hour:    b[4],
		Minute:  b[5],
		Second:  b[6],
		Weekday: b[7],
	}, nil
}

// Bytes returns the on-disk encoding of t.
func (t Timestamp) Bytes() []byte {
	return []byte{t.Century, t.Year, t.Month, t.Day,
		t.Hour, t.Minute, t.Second, t.Weekday}
}

// String renders the raw digit pairs, regardless of whether they are valid.
func (t Timestamp) String() string {
	return fmt.Sprintf("%02x%02x-%02x-%02x %02x:%02x:%02x",
		t.Century, t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

//
func (t Timestamp) IsZero() bool {
	return t == Timestamp{}
}

// Time converts t into a UTC time.
func (t Timestamp) Time() (time.Time, error) {

	var vals [7]int
	for ix, b := range t.Bytes()[:7] {
		v, err := fromBCD(b)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid timestamp %s: %v", t, err)
		}
		vals[ix] = v
	}

	year := vals[0]*100 + vals[1]
	month, day := vals[2], vals[3]
	hour, min, sec := vals[4], vals[5], vals[6]

	if month < 1 || month > 12 || day < 1 || day > 31 ||
		hour > 23 || min > 59 || sec > 59 {
		return time.Time{}, fmt.Errorf("invalid timestamp %s", t)
	}

	ret := time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC)
	if ret.Day() != day {
		return time.Time{}, fmt.Errorf("invalid timestamp %s: no such day", t)
	}

	return ret, nil
}

// ToTimestamp encodes tm as a BCD timestamp.
func ToTimestamp(tm time.Time) Timestamp {
	return Timestamp{
		Century: toBCD(tm.Year() / 100),
		Year:    toBCD(tm.Year() % 100),
		Month:   toBCD(int(tm.Month())),
		Day:     toBCD(tm.Day()),
		Hour:    toBCD(tm.Hour()),
		Minute:  toBCD(tm.Minute()),
		Second:  toBCD(tm.Second()),
		Weekday: toBCD((int(tm.Weekday()) + 6) % 7),
	}
}

//
func fromBCD(b byte) (int, error) {
	hi, lo := int(b>>4), int(b&0x0f)
	if hi > 9 || lo > 9 {
		return 0, fmt.Errorf("not a BCD value: %02x", b)
	}
	return hi*10 + lo, nil
}

//
func toBCD(v int) byte {
	v %= 100
	return byte((v/10)<<4 | v%10)
}
