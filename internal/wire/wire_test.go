package wire

import (
	"testing"
	"time"
)

func TestRoundTrip(t *testing.T) {
	at := time.Unix(1700000000, 123456789)
	e := Envelope{StoredAt: at, TTL: 12 * time.Hour, Payload: []byte(`{"x":1}`)}

	got, err := Decode(Encode(e))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.StoredAt.Equal(at) || got.TTL != e.TTL || string(got.Payload) != string(e.Payload) {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, e)
	}
}

func TestNeverSentinelSurvivesEncode(t *testing.T) {
	e := Envelope{StoredAt: time.Now(), TTL: -1, Payload: []byte("v")}
	got, err := Decode(Encode(e))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.TTL >= 0 {
		t.Fatalf("expected negative TTL after round trip, got %v", got.TTL)
	}
	if got.Expired(time.Now().Add(1000 * time.Hour)) {
		t.Fatalf("never-expiring entry reported expired")
	}
}

func TestExpired(t *testing.T) {
	at := time.Unix(1700000000, 0)
	e := Envelope{StoredAt: at, TTL: time.Hour}

	if e.Expired(at.Add(59 * time.Minute)) {
		t.Fatalf("expired before TTL elapsed")
	}
	if !e.Expired(at.Add(time.Hour)) {
		t.Fatalf("not expired at TTL boundary")
	}
}

func TestDecodeRejectsCorrupt(t *testing.T) {
	cases := map[string][]byte{
		"empty":       nil,
		"short":       []byte("STRS"),
		"bad_magic":   append([]byte("XXXX"), make([]byte, 30)...),
		"bad_version": append([]byte{'S', 'T', 'R', 'S', 99}, make([]byte, 30)...),
	}
	for name, b := range cases {
		if _, err := Decode(b); err == nil {
			t.Fatalf("%s: Decode should fail", name)
		}
	}
}

func TestDecodeRejectsTrailing(t *testing.T) {
	b := Encode(Envelope{StoredAt: time.Now(), TTL: time.Minute, Payload: []byte("x")})
	b = append(b, 0xDE, 0xAD) // trailing junk
	if _, err := Decode(b); err == nil {
		t.Fatalf("Decode should reject trailing bytes")
	}
}
