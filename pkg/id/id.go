package id

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"io"
	"time"
)

// ID is a 96-bit time-prefixed identifier.
type ID [12]byte

// NowMs returns current time in milliseconds since Unix epoch.
var NowMs = func() int64 { return time.Now().UnixMilli() }

// entropy is the source of the random tail.
var entropy io.Reader = rand.Reader

// New returns a fresh ID. If the random source fails the tail stays zero;
// the timestamp prefix is still meaningful.
func New() ID {
	var id ID
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(NowMs()))
	copy(id[0:6], ts[2:8])
	_, _ = io.ReadFull(entropy, id[6:])
	return id
}

// String returns the lowercase hex form.
func (i ID) String() string { return hex.EncodeToString(i[:]) }

// Time returns the millisecond timestamp embedded in the ID.
func (i ID) Time() time.Time {
	var ts [8]byte
	copy(ts[2:8], i[0:6])
	return time.UnixMilli(int64(binary.BigEndian.Uint64(ts[:])))
}
