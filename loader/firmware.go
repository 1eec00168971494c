// Package loader provides Teak firmware image loading.
//
// Images use a compact segmented container: a fixed header naming the
// entry point, followed by segments that target either the program or
// the data space. All multi-byte fields are little-endian.
//
//	offset  size  field
//	0       4     magic "TKFW"
//	4       2     format version (currently 1)
//	6       2     segment count
//	8       4     entry point (18-bit program address)
//	12      ...   segments
//
// Each segment:
//
//	0       2     target space (0 = program, 1 = data)
//	2       4     load address (word address)
//	6       4     length in 16-bit words
//	10      ...   payload, length*2 bytes
package loader

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/teaksim/emu"
)

// Magic identifies a Teak firmware image.
const Magic = "TKFW"

// FormatVersion is the container version this loader understands.
const FormatVersion = 1

// Space selects the target address space of a segment.
type Space uint16

// Target spaces.
const (
	SpaceProgram Space = 0
	SpaceData    Space = 1
)

// Segment is one loadable region of a firmware image.
type Segment struct {
	// Space is the address space the segment loads into.
	Space Space
	// Addr is the load address in 16-bit words.
	Addr uint32
	// Words is the segment payload.
	Words []uint16
}

// Program is a parsed firmware image.
type Program struct {
	// EntryPoint is the initial 18-bit program counter.
	EntryPoint uint32
	// Segments are the loadable regions in file order.
	Segments []Segment
}

// Load reads and parses a firmware image from a file.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses a firmware image from a stream.
func Read(r io.Reader) (*Program, error) {
	var header struct {
		Magic    [4]byte
		Version  uint16
		Segments uint16
		Entry    uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("reading image header: %w", err)
	}
	if string(header.Magic[:]) != Magic {
		return nil, fmt.Errorf("bad magic %q", header.Magic)
	}
	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported image version %d", header.Version)
	}
	if header.Entry >= 1<<18 {
		return nil, fmt.Errorf("entry point %#x beyond program space", header.Entry)
	}

	prog := &Program{EntryPoint: header.Entry}
	for i := 0; i < int(header.Segments); i++ {
		var seg struct {
			Space  uint16
			Addr   uint32
			Length uint32
		}
		if err := binary.Read(r, binary.LittleEndian, &seg); err != nil {
			return nil, fmt.Errorf("reading segment %d header: %w", i, err)
		}
		switch Space(seg.Space) {
		case SpaceProgram:
			if uint64(seg.Addr)+uint64(seg.Length) > 1<<18 {
				return nil, fmt.Errorf("segment %d overruns program space", i)
			}
		case SpaceData:
			if uint64(seg.Addr)+uint64(seg.Length) > 1<<16 {
				return nil, fmt.Errorf("segment %d overruns data space", i)
			}
		default:
			return nil, fmt.Errorf("segment %d has unknown target space %d", i, seg.Space)
		}
		words := make([]uint16, seg.Length)
		if err := binary.Read(r, binary.LittleEndian, words); err != nil {
			return nil, fmt.Errorf("reading segment %d payload: %w", i, err)
		}
		prog.Segments = append(prog.Segments, Segment{
			Space: Space(seg.Space),
			Addr:  seg.Addr,
			Words: words,
		})
	}
	return prog, nil
}

// LoadInto copies every segment into memory.
func (p *Program) LoadInto(mem *emu.Memory) {
	for _, seg := range p.Segments {
		switch seg.Space {
		case SpaceProgram:
			mem.LoadProgram(seg.Addr, seg.Words)
		case SpaceData:
			mem.LoadData(uint16(seg.Addr), seg.Words)
		}
	}
}

// Write serializes a firmware image. It is the inverse of Read and is
// what the test tooling uses to build fixtures.
func Write(w io.Writer, p *Program) error {
	header := struct {
		Magic    [4]byte
		Version  uint16
		Segments uint16
		Entry    uint32
	}{
		Version:  FormatVersion,
		Segments: uint16(len(p.Segments)),
		Entry:    p.EntryPoint,
	}
	copy(header.Magic[:], Magic)
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	for _, seg := range p.Segments {
		segHeader := struct {
			Space  uint16
			Addr   uint32
			Length uint32
		}{uint16(seg.Space), seg.Addr, uint32(len(seg.Words))}
		if err := binary.Write(w, binary.LittleEndian, &segHeader); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, seg.Words); err != nil {
			return err
		}
	}
	return nil
}
