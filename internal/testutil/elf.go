package testutil

import (
	"bytes"
	"encoding/binary"
)

// Minimal ELF64 constants for the synthetic module images used in tests.
const (
	elfHeaderSize    = 64
	sectionEntrySize = 64
)

// ModuleImage builds a minimal little-endian ELF64 relocatable image whose
// .modinfo section holds the given "key=value" entries, each terminated by
// a NUL byte, in order.
func ModuleImage(entries ...string) []byte {
	var data bytes.Buffer
	for _, e := range entries {
		data.WriteString(e)
		data.WriteByte(0)
	}
	return Image(".modinfo", data.Bytes())
}

// Image builds a minimal little-endian ELF64 relocatable image holding one
// named section with the given payload. The image carries three sections:
// the null section, the payload section and .shstrtab.
func Image(section string, data []byte) []byte {
	// Section name string table: \0 + section + \0 + ".shstrtab" + \0
	var shstrtab bytes.Buffer
	shstrtab.WriteByte(0)
	nameOff := uint32(shstrtab.Len())
	shstrtab.WriteString(section)
	shstrtab.WriteByte(0)
	strtabNameOff := uint32(shstrtab.Len())
	shstrtab.WriteString(".shstrtab")
	shstrtab.WriteByte(0)

	dataOff := uint64(elfHeaderSize)
	strtabOff := dataOff + uint64(len(data))
	shoff := strtabOff + uint64(shstrtab.Len())
	if pad := shoff % 8; pad != 0 {
		shoff += 8 - pad
	}

	buf := new(bytes.Buffer)

	// ELF header
	buf.Write([]byte{0x7f, 'E', 'L', 'F', 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	le := binary.LittleEndian
	put16 := func(v uint16) { _ = binary.Write(buf, le, v) }
	put32 := func(v uint32) { _ = binary.Write(buf, le, v) }
	put64 := func(v uint64) { _ = binary.Write(buf, le, v) }

	put16(1)  // e_type: ET_REL
	put16(62) // e_machine: EM_X86_64
	put32(1)  // e_version
	put64(0)  // e_entry
	put64(0)  // e_phoff
	put64(shoff)
	put32(0)                // e_flags
	put16(elfHeaderSize)    // e_ehsize
	put16(0)                // e_phentsize
	put16(0)                // e_phnum
	put16(sectionEntrySize) // e_shentsize
	put16(3)                // e_shnum
	put16(2)                // e_shstrndx

	buf.Write(data)
	buf.Write(shstrtab.Bytes())
	for uint64(buf.Len()) < shoff {
		buf.WriteByte(0)
	}

	shdr := func(name uint32, typ uint32, off, size uint64) {
		put32(name)
		put32(typ)
		put64(0) // sh_flags
		put64(0) // sh_addr
		put64(off)
		put64(size)
		put32(0) // sh_link
		put32(0) // sh_info
		put64(1) // sh_addralign
		put64(0) // sh_entsize
	}

	shdr(0, 0, 0, 0)                                          // SHT_NULL
	shdr(nameOff, 1, dataOff, uint64(len(data)))              // SHT_PROGBITS
	shdr(strtabNameOff, 3, strtabOff, uint64(shstrtab.Len())) // SHT_STRTAB

	return buf.Bytes()
}
