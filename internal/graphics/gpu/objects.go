package gpu

import (
	"errors"
	"fmt"
)

var (
	ErrVertexArrayCreation = errors.New("gpu: vertex array creation failed")
	ErrBufferCreation      = errors.New("gpu: buffer creation failed")
)

// CreateError reports which object could not be created
type CreateError struct {
	Object string
	Err    error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("create %s: %v", e.Object, e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

// VertexArray is a vertex array object handle known to be non-zero
type VertexArray struct {
	ID uint32
}

// Buffer is a buffer object handle known to be non-zero
type Buffer struct {
	ID uint32
}

// NewVertexArray allocates a vertex array object
func NewVertexArray(d Device) (VertexArray, error) {
	id := d.GenVertexArray()
	if id == 0 {
		return VertexArray{}, &CreateError{Object: "vertex array", Err: ErrVertexArrayCreation}
	}
	return VertexArray{ID: id}, nil
}

// NewBuffer allocates a buffer object. name is used in the error only.
func NewBuffer(d Device, name string) (Buffer, error) {
	id := d.GenBuffer()
	if id == 0 {
		return Buffer{}, &CreateError{Object: name, Err: ErrBufferCreation}
	}
	return Buffer{ID: id}, nil
}

func (v VertexArray) Bind(d Device) {
	d.BindVertexArray(v.ID)
}

func (v VertexArray) Delete(d Device) {
	if v.ID != 0 {
		d.DeleteVertexArray(v.ID)
	}
}

// Upload binds b to target and replaces its contents with data.
func (b Buffer) Upload(d Device, target uint32, data []byte, usage uint32) {
	d.BindBuffer(target, b.ID)
	d.BufferData(target, data, usage)
}

func (b Buffer) Delete(d Device) {
	if b.ID != 0 {
		d.DeleteBuffer(b.ID)
	}
}

// UnbindVertexArray clears the vertex array binding
func UnbindVertexArray(d Device) {
	d.BindVertexArray(0)
}

// Attrib describes one float vertex attribute inside an interleaved record
type Attrib struct {
	Location   uint32
	Components int32
	Offset     int
}

// AttribLayout is the full description of an interleaved vertex record
type AttribLayout struct {
	Stride  int
	Attribs []Attrib
}

// Apply enables and points every attribute at the currently bound array buffer.
func (l AttribLayout) Apply(d Device) {
	for _, a := range l.Attribs {
		d.EnableVertexAttribArray(a.Location)
		d.VertexAttribPointer(a.Location, a.Components, Float, false, int32(l.Stride), uintptr(a.Offset))
	}
}
