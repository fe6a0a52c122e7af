// stand for bytes helper
package bx

import "encoding/binary"

// The wire format is little-endian throughout.
var LE = binary.LittleEndian

// --- read ---
func U16(b []byte) uint16 { return LE.Uint16(b) }
func U32(b []byte) uint32 { return LE.Uint32(b) }
func U64(b []byte) uint64 { return LE.Uint64(b) }
func I64(b []byte) int64  { return int64(U64(b)) }

// --- write ---
func PutU16(b []byte, v uint16) { LE.PutUint16(b, v) }
func PutU32(b []byte, v uint32) { LE.PutUint32(b, v) }
func PutU64(b []byte, v uint64) { LE.PutUint64(b, v) }

// --- append (row/schema encoders build buffers incrementally) ---
func AppendU16(b []byte, v uint16) []byte { return LE.AppendUint16(b, v) }
func AppendU32(b []byte, v uint32) []byte { return LE.AppendUint32(b, v) }
func AppendU64(b []byte, v uint64) []byte { return LE.AppendUint64(b, v) }
