package classfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// reader keeps the first error; reads after it return zero values.
type reader struct {
	r   io.Reader
	err error
	buf [8]byte
}

func (r *reader) read(n int) []byte {
	b := r.buf[:n]
	if r.err != nil {
		clear(b)
		return b
	}
	if _, r.err = io.ReadFull(r.r, b); r.err != nil {
		clear(b)
	}
	return b
}

func (r *reader) u1() uint8  { return r.read(1)[0] }
func (r *reader) u2() uint16 { return binary.BigEndian.Uint16(r.read(2)) }
func (r *reader) u4() uint32 { return binary.BigEndian.Uint32(r.read(4)) }

func (r *reader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	b := make([]byte, n)
	_, r.err = io.ReadFull(r.r, b)
	return b
}

func (r *reader) skip(n int64) {
	if r.err != nil {
		return
	}
	var copied int64
	copied, r.err = io.CopyN(io.Discard, r.r, n)
	if r.err == io.EOF && copied < n {
		r.err = io.ErrUnexpectedEOF
	}
}

func ParseFile(path string) (*ClassFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open class file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(rd io.Reader) (*ClassFile, error) {
	r := &reader{r: rd}

	magic := r.u4()
	if r.err != nil {
		return nil, fmt.Errorf("read magic: %w", r.err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("invalid magic number: 0x%X (expected 0xCAFEBABE)", magic)
	}

	cf := &ClassFile{
		MinorVersion: r.u2(),
		MajorVersion: r.u2(),
	}
	if r.err != nil {
		return nil, fmt.Errorf("read version: %w", r.err)
	}

	pool, err := readConstantPool(r)
	if err != nil {
		return nil, err
	}

	cf.AccessFlags = AccessFlags(r.u2())
	thisClass, superClass := r.u2(), r.u2()
	interfaces := make([]uint16, r.u2())
	for i := range interfaces {
		interfaces[i] = r.u2()
	}
	if r.err != nil {
		return nil, fmt.Errorf("read class info: %w", r.err)
	}

	if cf.Name, err = pool.className(thisClass); err != nil {
		return nil, fmt.Errorf("resolve this class: %w", err)
	}
	if cf.SuperName, err = pool.className(superClass); err != nil {
		return nil, fmt.Errorf("resolve super class: %w", err)
	}
	for _, idx := range interfaces {
		name, err := pool.className(idx)
		if err != nil {
			return nil, fmt.Errorf("resolve interface: %w", err)
		}
		cf.Interfaces = append(cf.Interfaces, name)
	}

	fieldsCount := r.u2()
	for i := uint16(0); i < fieldsCount && r.err == nil; i++ {
		r.skip(6)
		if err := readAttributes(r, pool, nil); err != nil {
			return nil, fmt.Errorf("read field %d: %w", i, err)
		}
	}
	if r.err != nil {
		return nil, fmt.Errorf("read fields: %w", r.err)
	}

	methodsCount := r.u2()
	for i := uint16(0); i < methodsCount; i++ {
		m, err := readMethod(r, pool)
		if err != nil {
			return nil, fmt.Errorf("read method %d: %w", i, err)
		}
		cf.Methods = append(cf.Methods, *m)
	}

	err = readAttributes(r, pool, func(name string, info []byte) error {
		var err error
		switch name {
		case "Signature":
			cf.Signature, err = signatureAttribute(pool, info)
		case "InnerClasses":
			cf.InnerClasses, err = innerClassesAttribute(pool, info)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read class attributes: %w", err)
	}

	return cf, nil
}

func readMethod(r *reader, pool constantPool) (*MethodInfo, error) {
	m := &MethodInfo{AccessFlags: AccessFlags(r.u2())}
	nameIndex, descriptorIndex := r.u2(), r.u2()
	if r.err != nil {
		return nil, r.err
	}
	var err error
	if m.Name, err = pool.utf8(nameIndex); err != nil {
		return nil, err
	}
	if m.Descriptor, err = pool.utf8(descriptorIndex); err != nil {
		return nil, err
	}

	err = readAttributes(r, pool, func(name string, info []byte) error {
		var err error
		switch name {
		case "Signature":
			m.Signature, err = signatureAttribute(pool, info)
		case "MethodParameters":
			m.ParameterNames, err = methodParametersAttribute(pool, info)
		}
		return err
	})
	return m, err
}

// readAttributes hands each attribute to visit by name. A nil visit skips
// all of them.
func readAttributes(r *reader, pool constantPool, visit func(name string, info []byte) error) error {
	count := r.u2()
	for i := uint16(0); i < count; i++ {
		nameIndex := r.u2()
		length := r.u4()
		if r.err != nil {
			return r.err
		}
		if visit == nil {
			r.skip(int64(length))
			continue
		}
		name, err := pool.utf8(nameIndex)
		if err != nil {
			return err
		}
		info := r.bytes(int(length))
		if r.err != nil {
			return r.err
		}
		if err := visit(name, info); err != nil {
			return fmt.Errorf("attribute %s: %w", name, err)
		}
	}
	return r.err
}

func signatureAttribute(pool constantPool, info []byte) (string, error) {
	if len(info) < 2 {
		return "", io.ErrUnexpectedEOF
	}
	return pool.utf8(binary.BigEndian.Uint16(info))
}

func innerClassesAttribute(pool constantPool, info []byte) ([]InnerClass, error) {
	if len(info) < 2 {
		return nil, io.ErrUnexpectedEOF
	}
	count := int(binary.BigEndian.Uint16(info))
	if len(info) < 2+count*8 {
		return nil, io.ErrUnexpectedEOF
	}
	classes := make([]InnerClass, 0, count)
	for off := 2; off < 2+count*8; off += 8 {
		var ic InnerClass
		var err error
		if ic.Name, err = pool.className(binary.BigEndian.Uint16(info[off:])); err != nil {
			return nil, err
		}
		if ic.Outer, err = pool.className(binary.BigEndian.Uint16(info[off+2:])); err != nil {
			return nil, err
		}
		if idx := binary.BigEndian.Uint16(info[off+4:]); idx != 0 {
			if ic.SimpleName, err = pool.utf8(idx); err != nil {
				return nil, err
			}
		}
		ic.AccessFlags = AccessFlags(binary.BigEndian.Uint16(info[off+6:]))
		classes = append(classes, ic)
	}
	return classes, nil
}

// methodParametersAttribute returns "" for parameters without a recorded name.
func methodParametersAttribute(pool constantPool, info []byte) ([]string, error) {
	if len(info) < 1 {
		return nil, io.ErrUnexpectedEOF
	}
	count := int(info[0])
	if len(info) < 1+count*4 {
		return nil, io.ErrUnexpectedEOF
	}
	names := make([]string, count)
	for i := range names {
		idx := binary.BigEndian.Uint16(info[1+i*4:])
		if idx == 0 {
			continue
		}
		name, err := pool.utf8(idx)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}
