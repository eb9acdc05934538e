package classfile

import (
	"fmt"
	"unicode/utf16"
)

const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

// Only Utf8 and Class entries are kept; all others are skipped over.
type poolEntry struct {
	tag       uint8
	utf8      string
	nameIndex uint16
}

type constantPool []poolEntry

func readConstantPool(r *reader) (constantPool, error) {
	count := r.u2()
	if r.err != nil {
		return nil, fmt.Errorf("read constant pool count: %w", r.err)
	}
	pool := make(constantPool, count)
	for i := 1; i < int(count); i++ {
		tag := r.u1()
		entry := poolEntry{tag: tag}
		wide := false
		switch tag {
		case tagUtf8:
			entry.utf8 = decodeModifiedUTF8(r.bytes(int(r.u2())))
		case tagClass:
			entry.nameIndex = r.u2()
		case tagString, tagMethodType, tagModule, tagPackage:
			r.skip(2)
		case tagMethodHandle:
			r.skip(3)
		case tagInteger, tagFloat, tagFieldref, tagMethodref, tagInterfaceMethodref,
			tagNameAndType, tagDynamic, tagInvokeDynamic:
			r.skip(4)
		case tagLong, tagDouble:
			r.skip(8)
			wide = true
		default:
			if r.err == nil {
				return nil, fmt.Errorf("unknown constant pool tag %d at index %d", tag, i)
			}
		}
		if r.err != nil {
			return nil, fmt.Errorf("read constant pool entry %d: %w", i, r.err)
		}
		pool[i] = entry
		if wide {
			// 8 byte constants occupy two slots.
			i++
		}
	}
	return pool, nil
}

func (p constantPool) utf8(index uint16) (string, error) {
	if index == 0 || int(index) >= len(p) || p[index].tag != tagUtf8 {
		return "", fmt.Errorf("constant pool index %d is not a Utf8 entry", index)
	}
	return p[index].utf8, nil
}

// className resolves a Class entry; index 0 yields "".
func (p constantPool) className(index uint16) (string, error) {
	if index == 0 {
		return "", nil
	}
	if int(index) >= len(p) || p[index].tag != tagClass {
		return "", fmt.Errorf("constant pool index %d is not a Class entry", index)
	}
	return p.utf8(p[index].nameIndex)
}

// decodeModifiedUTF8 decodes the JVM's variant of UTF-8, where supplementary
// characters are stored as two encoded surrogates.
func decodeModifiedUTF8(b []byte) string {
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c&0x80 == 0:
			units = append(units, uint16(c))
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b):
			units = append(units, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b):
			units = append(units, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			units = append(units, 0xFFFD)
			i++
		}
	}
	return string(utf16.Decode(units))
}
