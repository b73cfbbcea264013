// Copyright 2026 Ewout Prangsma
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Author Ewout Prangsma
//

package pin

import (
	"io"
)

// Writer is implemented by GPIO values that are written with a logical value,
// such as the pins of github.com/ecc1/gpio.
type Writer interface {
	Write(bool) error
}

// Reader is implemented by GPIO values that are read as a logical value.
type Reader interface {
	Read() (bool, error)
}

// ReadWriter is both a Reader and a Writer.
type ReadWriter interface {
	Reader
	Writer
}

type writerPin struct {
	w Writer
}

// FromWriter turns the given writer into an output pin.
func FromWriter(w Writer) OutputPin {
	return &writerPin{w: w}
}

func (p *writerPin) SetLow() error  { return p.w.Write(false) }
func (p *writerPin) SetHigh() error { return p.w.Write(true) }
func (p *writerPin) Close() error   { return closeIfCloser(p.w) }

type readerPin struct {
	r Reader
}

// FromReader turns the given reader into an input pin.
func FromReader(r Reader) InputPin {
	return &readerPin{r: r}
}

func (p *readerPin) IsHigh() (bool, error) { return p.r.Read() }
func (p *readerPin) IsLow() (bool, error)  { return isLow(p.r) }
func (p *readerPin) Close() error          { return closeIfCloser(p.r) }

type readWriterPin struct {
	rw ReadWriter
}

// FromReadWriter turns the given reader/writer into a pin that is both
// an input and an output.
func FromReadWriter(rw ReadWriter) IOPin {
	return &readWriterPin{rw: rw}
}

func (p *readWriterPin) SetLow() error         { return p.rw.Write(false) }
func (p *readWriterPin) SetHigh() error        { return p.rw.Write(true) }
func (p *readWriterPin) IsHigh() (bool, error) { return p.rw.Read() }
func (p *readWriterPin) IsLow() (bool, error)  { return isLow(p.rw) }
func (p *readWriterPin) Close() error          { return closeIfCloser(p.rw) }

func isLow(r Reader) (bool, error) {
	v, err := r.Read()
	if err != nil {
		return false, err
	}
	return !v, nil
}

func closeIfCloser(v interface{}) error {
	if c, ok := v.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
