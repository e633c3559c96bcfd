package hash

import (
	"testing"

	"github.com/camlkit/intern/marshal"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_Deterministic(t *testing.T) {
	v := &marshal.Block{Tag: 0, Fields: []marshal.Value{marshal.Integer(1), marshal.Float(2.5)}}

	require.Equal(t, Fingerprint(v), Fingerprint(v))
}

func TestFingerprint_StructurallyEqualValuesMatch(t *testing.T) {
	a := &marshal.Block{Tag: 3, Fields: []marshal.Value{marshal.Integer(7)}}
	b := &marshal.Block{Tag: 3, Fields: []marshal.Value{marshal.Integer(7)}}

	require.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprint_DistinguishesKindsAndContent(t *testing.T) {
	seen := map[uint64]marshal.Value{}

	bytesVal := marshal.Bytes("ab")
	doublesVal := marshal.Doubles{1, 2}

	values := []marshal.Value{
		marshal.Integer(1),
		marshal.Integer(2),
		marshal.Float(1),
		&bytesVal,
		&doublesVal,
		&marshal.Block{Tag: 0},
		&marshal.Block{Tag: 1},
		&marshal.Custom{ID: "_i", Payload: []byte{0, 0, 0, 1}},
	}

	for _, v := range values {
		fp := Fingerprint(v)
		prev, dup := seen[fp]
		require.False(t, dup, "collision between %#v and %#v", prev, v)
		seen[fp] = v
	}
}

func TestFingerprint_SharingChangesDigest(t *testing.T) {
	// Two fields aliasing one cell vs. two equal but distinct cells: the
	// digest must tell them apart, because downstream identity differs.
	shared := marshal.Bytes("x")
	aliased := &marshal.Block{Fields: []marshal.Value{&shared, &shared}}

	left, right := marshal.Bytes("x"), marshal.Bytes("x")
	copied := &marshal.Block{Fields: []marshal.Value{&left, &right}}

	require.NotEqual(t, Fingerprint(aliased), Fingerprint(copied))
}

func TestFingerprint_TerminatesOnCycles(t *testing.T) {
	cyclic := &marshal.Block{Tag: 0, Fields: make([]marshal.Value, 1)}
	cyclic.Fields[0] = cyclic

	fp := Fingerprint(cyclic)
	require.Equal(t, fp, Fingerprint(cyclic))
}
