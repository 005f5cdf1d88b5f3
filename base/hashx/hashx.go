// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashx provides a small builder for deterministic
// structural hashes, used to hash attribute values and element trees.
package hashx

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// Builder accumulates a 64-bit FNV-1a hash. The zero value is not
// usable; call [New]. Hashes are stable across processes, so they
// can be stored as memoization keys.
type Builder struct {
	h   hash.Hash64
	buf [binary.MaxVarintLen64]byte

	// Scratch is a reusable buffer for callers that render
	// canonical text before writing it.
	Scratch []byte
}

// New returns a new, empty [Builder].
func New() *Builder {
	return &Builder{h: fnv.New64a()}
}

// Reset clears the builder so it can be reused.
func (b *Builder) Reset() {
	b.h.Reset()
	b.Scratch = b.Scratch[:0]
}

func (b *Builder) write(p []byte) {
	// hash.Hash.Write never returns an error for standard library hashes.
	_, _ = b.h.Write(p)
}

// U8 writes a single byte, typically a tag separating fields.
func (b *Builder) U8(v uint8) {
	b.buf[0] = v
	b.write(b.buf[:1])
}

// U32 writes v in little-endian order.
func (b *Builder) U32(v uint32) {
	binary.LittleEndian.PutUint32(b.buf[:4], v)
	b.write(b.buf[:4])
}

// U64 writes v in little-endian order.
func (b *Builder) U64(v uint64) {
	binary.LittleEndian.PutUint64(b.buf[:8], v)
	b.write(b.buf[:8])
}

// Uvarint writes v as an unsigned varint.
func (b *Builder) Uvarint(v uint64) {
	n := binary.PutUvarint(b.buf[:], v)
	b.write(b.buf[:n])
}

// Bytes writes p prefixed with its length, so that adjacent
// fields cannot run into each other.
func (b *Builder) Bytes(p []byte) {
	b.Uvarint(uint64(len(p)))
	b.write(p)
}

// String writes s prefixed with its length; see [Builder.Bytes].
func (b *Builder) String(s string) {
	b.Uvarint(uint64(len(s)))
	_, _ = hashWriteString(b.h, s)
}

// Sum64 returns the current hash.
func (b *Builder) Sum64() uint64 {
	return b.h.Sum64()
}

func hashWriteString(h hash.Hash64, s string) (int, error) {
	if sw, ok := h.(interface{ WriteString(string) (int, error) }); ok {
		return sw.WriteString(s)
	}
	return h.Write([]byte(s))
}
