// Package nbt encodes the uncompressed, big-endian Named Binary Tag
// format used by Minecraft clients for save state such as server
// lists. Only encoding is implemented; the game client is the reader.
package nbt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Wire type IDs.
const (
	idEnd byte = iota
	idByte
	idShort
	idInt
	idLong
	idFloat
	idDouble
	idByteArray
	idString
	idList
	idCompound
	idIntArray
	idLongArray
)

var (
	ErrListType  = errors.New("nbt: list element type mismatch")
	ErrStringLen = errors.New("nbt: string too long for length prefix")
)

// Tag is a node of the typed tree. Concrete tag types are defined in
// this package; scalars convert directly from Go values.
type Tag interface {
	id() byte
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	String    string
	IntArray  []int32
	LongArray []int64
)

// List holds uniformly-typed elements. The element type is taken from
// the first element; a mix of element types fails encoding.
type List []Tag

// Compound is an ordered sequence of named child tags. Order is
// preserved on the wire, keeping output deterministic.
type Compound []Entry

// Entry is a named child of a Compound.
type Entry struct {
	Name string
	Tag  Tag
}

func (Byte) id() byte      { return idByte }
func (Short) id() byte     { return idShort }
func (Int) id() byte       { return idInt }
func (Long) id() byte      { return idLong }
func (Float) id() byte     { return idFloat }
func (Double) id() byte    { return idDouble }
func (ByteArray) id() byte { return idByteArray }
func (String) id() byte    { return idString }
func (List) id() byte      { return idList }
func (Compound) id() byte  { return idCompound }
func (IntArray) id() byte  { return idIntArray }
func (LongArray) id() byte { return idLongArray }

// Marshal encodes a single named root tag.
func Marshal(name string, t Tag) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(name, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encoder writes tags to an underlying stream.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w}
}

// Encode writes one named tag: type ID, name, then payload.
func (e *Encoder) Encode(name string, t Tag) error {
	if err := e.writeByte(t.id()); err != nil {
		return err
	}
	if err := e.writeString(name); err != nil {
		return err
	}
	return e.payload(t)
}

func (e *Encoder) payload(t Tag) error {
	switch v := t.(type) {
	case Byte:
		return e.writeByte(byte(v))
	case Short:
		return e.write(int16(v))
	case Int:
		return e.write(int32(v))
	case Long:
		return e.write(int64(v))
	case Float:
		return e.write(float32(v))
	case Double:
		return e.write(float64(v))
	case ByteArray:
		if err := e.write(int32(len(v))); err != nil {
			return err
		}
		_, err := e.w.Write(v)
		return err
	case String:
		return e.writeString(string(v))
	case List:
		return e.list(v)
	case Compound:
		return e.compound(v)
	case IntArray:
		if err := e.write(int32(len(v))); err != nil {
			return err
		}
		return e.write([]int32(v))
	case LongArray:
		if err := e.write(int32(len(v))); err != nil {
			return err
		}
		return e.write([]int64(v))
	}
	return fmt.Errorf("nbt: unsupported tag %T", t)
}

func (e *Encoder) list(v List) error {
	// An empty list carries the end tag as its element type.
	elem := idEnd
	if len(v) > 0 {
		elem = v[0].id()
	}
	if err := e.writeByte(elem); err != nil {
		return err
	}
	if err := e.write(int32(len(v))); err != nil {
		return err
	}
	for i, t := range v {
		if t.id() != elem {
			return fmt.Errorf("%w: element %d is %T", ErrListType, i, t)
		}
		if err := e.payload(t); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) compound(v Compound) error {
	for _, entry := range v {
		if err := e.Encode(entry.Name, entry.Tag); err != nil {
			return err
		}
	}
	return e.writeByte(idEnd)
}

func (e *Encoder) writeString(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes", ErrStringLen, len(s))
	}
	if err := e.write(uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, s)
	return err
}

func (e *Encoder) write(v interface{}) error {
	return binary.Write(e.w, binary.BigEndian, v)
}

func (e *Encoder) writeByte(b byte) error {
	_, err := e.w.Write([]byte{b})
	return err
}
