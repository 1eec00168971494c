package loader_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sarchlab/teaksim/emu"
	"github.com/sarchlab/teaksim/loader"
)

func TestRoundTrip(t *testing.T) {
	prog := &loader.Program{
		EntryPoint: 0x100,
		Segments: []loader.Segment{
			{Space: loader.SpaceProgram, Addr: 0x100, Words: []uint16{0x0000, 0x1360, 0x1234}},
			{Space: loader.SpaceData, Addr: 0x2000, Words: []uint16{0xDEAD, 0xBEEF}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, loader.Write(&buf, prog))

	parsed, err := loader.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, prog.EntryPoint, parsed.EntryPoint)
	require.Equal(t, prog.Segments, parsed.Segments)
}

func TestLoadInto(t *testing.T) {
	prog := &loader.Program{
		EntryPoint: 0x100,
		Segments: []loader.Segment{
			{Space: loader.SpaceProgram, Addr: 0x100, Words: []uint16{0xABCD}},
			{Space: loader.SpaceData, Addr: 0x10, Words: []uint16{0x55AA}},
		},
	}

	mem := emu.NewMemory()
	prog.LoadInto(mem)
	require.Equal(t, uint16(0xABCD), mem.ProgramRead(0x100))
	require.Equal(t, uint16(0x55AA), mem.DataRead(0x10))
}

func TestBadMagic(t *testing.T) {
	_, err := loader.Read(bytes.NewReader([]byte("NOPE\x01\x00\x00\x00\x00\x00\x00\x00")))
	require.ErrorContains(t, err, "bad magic")
}

func TestEntryBeyondProgramSpace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, loader.Write(&buf, &loader.Program{EntryPoint: 1 << 18}))
	_, err := loader.Read(&buf)
	require.ErrorContains(t, err, "entry point")
}

func TestSegmentOverrun(t *testing.T) {
	prog := &loader.Program{
		Segments: []loader.Segment{
			{Space: loader.SpaceData, Addr: 0xFFFF, Words: []uint16{1, 2}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, loader.Write(&buf, prog))
	_, err := loader.Read(&buf)
	require.ErrorContains(t, err, "overruns data space")
}
