// Copyright 2017 Ewout Prangsma
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

package bridge

import (
	"os"
	"strconv"

	"github.com/ecc1/gpio"
	"github.com/pkg/errors"

	"github.com/binkynet/SharedPin/pkg/pin"
)

const (
	rpiBridgeName    = "rpi"
	rpiPinCount      = 28 // BCM GPIO 0..27
	gpioUnexportPath = "/sys/class/gpio/unexport"
)

type piBridge struct {
	*registry
}

// NewRaspberryPiBridge implements the bridge for Raspberry PI's
func NewRaspberryPiBridge() (API, error) {
	return &piBridge{
		registry: newRegistry(rpiBridgeName, rpiPinCount),
	}, nil
}

// Returns number of local pins
func (p *piBridge) PinCount() int {
	return rpiPinCount
}

// Input initializes a GPIO input pin with the given pin number.
func (p *piBridge) Input(pinNumber int, activeLow bool) (pin.InputPin, error) {
	if err := p.reserve(pinNumber); err != nil {
		return nil, err
	}
	in, err := gpio.Input(pinNumber, activeLow)
	if err != nil {
		p.release(pinNumber)
		return nil, errors.Wrapf(err, "Input[%d] failed", pinNumber)
	}
	l := &piLine{bridge: p, number: pinNumber, in: in}
	p.opened(pinNumber, l.Close)
	return pin.FromReader(l), nil
}

// Output initializes a GPIO output pin with the given pin number
// and initial logical value.
func (p *piBridge) Output(pinNumber int, activeLow bool, initialValue bool) (pin.OutputPin, error) {
	if err := p.reserve(pinNumber); err != nil {
		return nil, err
	}
	out, err := gpio.Output(pinNumber, activeLow, initialValue)
	if err != nil {
		p.release(pinNumber)
		return nil, errors.Wrapf(err, "Output[%d] failed", pinNumber)
	}
	l := &piLine{bridge: p, number: pinNumber, out: out}
	p.opened(pinNumber, l.Close)
	return pin.FromWriter(l), nil
}

// Close all pins that are still open.
func (p *piBridge) Close() error {
	if err := p.closeAll(); err != nil {
		return errors.Wrap(err, "Close failed")
	}
	return nil
}

// piLine is a single exported sysfs GPIO line.
type piLine struct {
	bridge *piBridge
	number int
	in     gpio.InputPin
	out    gpio.OutputPin
	closed bool
}

func (l *piLine) Write(v bool) error {
	err := l.out.Write(v)
	l.bridge.observe(pinWritesTotal, l.number, err)
	if err != nil {
		return errors.Wrapf(err, "Write[%d] failed", l.number)
	}
	return nil
}

func (l *piLine) Read() (bool, error) {
	v, err := l.in.Read()
	l.bridge.observe(pinReadsTotal, l.number, err)
	if err != nil {
		return false, errors.Wrapf(err, "Read[%d] failed", l.number)
	}
	return v, nil
}

// Close unexports the line and frees its pin number.
func (l *piLine) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	defer l.bridge.release(l.number)
	if err := os.WriteFile(gpioUnexportPath, []byte(strconv.Itoa(l.number)), 0644); err != nil {
		return errors.Wrapf(err, "failed to unexport pin %d", l.number)
	}
	return nil
}
