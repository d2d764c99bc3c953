package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a Codec that serializes readings using vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// Msgpack payloads are noticeably smaller than JSON, which matters for
// stores with per-entry size pressure (bigcache, ristretto). Field naming
// follows `msgpack:"..."` tags, not `json:"..."` ones.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}
func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}
