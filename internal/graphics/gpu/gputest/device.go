// Package gputest provides an in-memory gpu.Device that records calls.
package gputest

import (
	"fmt"
)

// Attrib is a recorded VertexAttribPointer call
type Attrib struct {
	Index      uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
	Enabled    bool
}

// Device records GPU calls and stores buffer contents per object.
// Set FailVertexArrays or FailBuffers to make the next Gen calls return 0;
// SkipBuffers lets that many GenBuffer calls succeed before failures start.
type Device struct {
	FailVertexArrays int
	FailBuffers      int
	SkipBuffers      int

	next        uint32
	VertexArray uint32
	Bound       map[uint32]uint32 // target -> buffer
	Data        map[uint32][]byte // buffer -> contents
	Usage       map[uint32]uint32 // buffer -> usage hint
	Attribs     map[uint32]map[uint32]*Attrib
	LiveArrays  map[uint32]bool
	LiveBuffers map[uint32]bool
	Calls       []string
}

// New creates an empty recording device
func New() *Device {
	return &Device{
		Bound:       make(map[uint32]uint32),
		Data:        make(map[uint32][]byte),
		Usage:       make(map[uint32]uint32),
		Attribs:     make(map[uint32]map[uint32]*Attrib),
		LiveArrays:  make(map[uint32]bool),
		LiveBuffers: make(map[uint32]bool),
	}
}

func (d *Device) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Device) GenVertexArray() uint32 {
	if d.FailVertexArrays > 0 {
		d.FailVertexArrays--
		d.record("GenVertexArray() = 0")
		return 0
	}
	d.next++
	d.LiveArrays[d.next] = true
	d.record("GenVertexArray() = %d", d.next)
	return d.next
}

func (d *Device) GenBuffer() uint32 {
	if d.FailBuffers > 0 && d.SkipBuffers > 0 {
		d.SkipBuffers--
	} else if d.FailBuffers > 0 {
		d.FailBuffers--
		d.record("GenBuffer() = 0")
		return 0
	}
	d.next++
	d.LiveBuffers[d.next] = true
	d.record("GenBuffer() = %d", d.next)
	return d.next
}

func (d *Device) BindVertexArray(vao uint32) {
	d.VertexArray = vao
	d.record("BindVertexArray(%d)", vao)
}

func (d *Device) BindBuffer(target, buffer uint32) {
	d.Bound[target] = buffer
	d.record("BindBuffer(%#x, %d)", target, buffer)
}

func (d *Device) BufferData(target uint32, data []byte, usage uint32) {
	buf := d.Bound[target]
	d.Data[buf] = append([]byte(nil), data...)
	d.Usage[buf] = usage
	d.record("BufferData(%#x, %d bytes)", target, len(data))
}

func (d *Device) attribs() map[uint32]*Attrib {
	m, ok := d.Attribs[d.VertexArray]
	if !ok {
		m = make(map[uint32]*Attrib)
		d.Attribs[d.VertexArray] = m
	}
	return m
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	m := d.attribs()
	a, ok := m[index]
	if !ok {
		a = &Attrib{Index: index}
		m[index] = a
	}
	a.Enabled = true
	d.record("EnableVertexAttribArray(%d)", index)
}

func (d *Device) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	m := d.attribs()
	a, ok := m[index]
	if !ok {
		a = &Attrib{Index: index}
		m[index] = a
	}
	a.Size, a.Type, a.Normalized, a.Stride, a.Offset = size, xtype, normalized, stride, offset
	d.record("VertexAttribPointer(%d, %d, %d)", index, size, offset)
}

func (d *Device) DeleteVertexArray(vao uint32) {
	delete(d.LiveArrays, vao)
	d.record("DeleteVertexArray(%d)", vao)
}

func (d *Device) DeleteBuffer(buffer uint32) {
	delete(d.LiveBuffers, buffer)
	delete(d.Data, buffer)
	d.record("DeleteBuffer(%d)", buffer)
}

// Live returns the number of objects not yet deleted
func (d *Device) Live() int {
	return len(d.LiveArrays) + len(d.LiveBuffers)
}
