package codec

// Codec turns reading values V into the bytes a store keeps, and back.
// Payloads travel inside the cache envelope, so codecs never see framing.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
