// Package wire frames cache entries in the envelope the cache owns:
// the stored payload plus the write time and TTL needed for lazy expiry.
// Framing is strict; trailing bytes are corruption.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"time"
)

const version byte = 1

// Never is the on-wire TTL sentinel for entries that do not expire.
const Never int64 = -1

var (
	ErrCorrupt = errors.New("wire: corrupt entry")
	magic4     = [...]byte{'S', 'T', 'R', 'S'}
)

// Envelope is one stored cache entry.
type Envelope struct {
	StoredAt time.Time
	TTL      time.Duration // negative => never expires
	Payload  []byte
}

// Expired reports whether the entry is stale at now. A negative TTL never
// expires.
func (e Envelope) Expired(now time.Time) bool {
	if e.TTL < 0 {
		return false
	}
	return now.Sub(e.StoredAt) >= e.TTL
}

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Layout: magic(4) | ver(1) | storedAt unix-nano(i64 be) | ttl nanos(i64 be) | vlen(u32 be) | payload(vlen)
func Encode(e Envelope) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 8 + 8 + 4 + len(e.Payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u8 [8]byte
	var u4 [4]byte

	binary.BigEndian.PutUint64(u8[:], uint64(e.StoredAt.UnixNano()))
	buf.Write(u8[:])

	ttl := int64(e.TTL)
	if ttl < 0 {
		ttl = Never
	}
	binary.BigEndian.PutUint64(u8[:], uint64(ttl))
	buf.Write(u8[:])

	binary.BigEndian.PutUint32(u4[:], uint32(len(e.Payload)))
	buf.Write(u4[:])

	buf.Write(e.Payload)
	return buf.Bytes()
}

func Decode(b []byte) (Envelope, error) {
	const hdr = 4 + 1 + 8 + 8 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return Envelope{}, ErrCorrupt
	}

	off := 5

	storedAt := int64(binary.BigEndian.Uint64(b[off : off+8]))
	off += 8

	ttl := int64(binary.BigEndian.Uint64(b[off : off+8]))
	off += 8
	if ttl < 0 && ttl != Never {
		return Envelope{}, ErrCorrupt
	}

	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen != len(b)-off { // strict framing: no trailing bytes
		return Envelope{}, ErrCorrupt
	}

	return Envelope{
		StoredAt: time.Unix(0, storedAt),
		TTL:      time.Duration(ttl),
		Payload:  b[off : off+vlen],
	}, nil
}
