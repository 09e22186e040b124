package real48

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

type vector struct {
	input uint64
	value float64
}

// Reference values produced by the RETRIEVE tool for a sample DID file.
var vectors = []vector{
	{0x8d257ce29d07, 4339.735588349402},
	{0x88a9f6629142, 194.5679163134191},
	{0x8c178f821d1f, 2545.844374742359},
	{0x8a4f07d49f1e, 634.4973161956295},
	{0x8aa26310731a, 617.7978753168136},
	{0x842a07a69a23, 10.22525599287474},
	{0x86337dcd3425, 41.30156512855319},
	{0x81cae2e40441, 1.507961855637404},
	{0x848f69b89a41, 12.10027352556062},
	{0x818916b81a05, 1.039877902034277},
	{0x81f1d23b2300, 1.001075246809705},
	{0x8382a8964e47, 6.22834332381899},
	{0x86b63b778744, 49.13229077623691},
	{0x8ded24812730, 5636.938058711588},
	{0x847870654c63, 14.2061514275847},
	{0x8dd563c1ab07, 4341.469428695738},
}

func TestDecode(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		require.Equal(t, 0.0, Decode(Real{}))
		require.Equal(t, 0.0, Decode(FromUint64(0)))
		require.False(t, math.Signbit(Decode(Real{})))
	})

	t.Run("vectors", func(t *testing.T) {
		for _, v := range vectors {
			t.Run(fmt.Sprintf("%012x", v.input), func(t *testing.T) {
				r := FromUint64(v.input)

				require.InEpsilon(t, v.value, Decode(r), 1e-9)
				require.Equal(t, Decode(r), r.Float64())
			})
		}
	})

	t.Run("sign", func(t *testing.T) {
		for _, v := range vectors {
			pos := FromUint64(v.input)
			neg := FromUint64(v.input ^ 0x000000000080)

			require.NotEqual(t, pos.Negative(), neg.Negative())
			require.Equal(t, -Decode(pos), Decode(neg))
		}
	})

	t.Run("exponent", func(t *testing.T) {
		for _, v := range vectors {
			r := FromUint64(v.input)
			up := r
			up[0]++

			require.Equal(t, 2*Decode(r), Decode(up))
		}
	})

	t.Run("edges", func(t *testing.T) {
		type TC struct {
			name  string
			input Real
			value float64
			mark  error
		}

		tcs := []TC{
			{
				name:  "one",
				input: Real{0x81, 0, 0, 0, 0, 0},
				value: 1,
				mark:  oops.New("unexpected"),
			},
			{
				name:  "minus one",
				input: Real{0x81, 0, 0, 0, 0, 0x80},
				value: -1,
				mark:  oops.New("unexpected"),
			},
			{
				name:  "one and a half",
				input: Real{0x81, 0, 0, 0, 0, 0b0100_0000},
				value: 1.5,
				mark:  oops.New("unexpected"),
			},
			{
				name:  "least significant bit",
				input: Real{0x81, 0b0000_0001, 0, 0, 0, 0},
				value: 1 + math.Ldexp(1, -39),
				mark:  oops.New("unexpected"),
			},
			{
				name:  "byte 4 top bit",
				input: Real{0x81, 0, 0, 0, 0b1000_0000, 0},
				value: 1 + math.Ldexp(1, -8),
				mark:  oops.New("unexpected"),
			},
			{
				name:  "zero exponent byte",
				input: Real{0, 0, 0, 0, 0, 0b0000_0001},
				value: math.Ldexp(1+math.Ldexp(1, -7), -129),
				mark:  oops.New("unexpected"),
			},
			{
				name:  "sign only",
				input: Real{0, 0, 0, 0, 0, 0x80},
				value: -math.Ldexp(1, -129),
				mark:  oops.New("unexpected"),
			},
			{
				name:  "largest",
				input: Real{0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
				value: math.Ldexp(2-math.Ldexp(1, -39), 126),
				mark:  oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			t.Run(tc.name, func(t *testing.T) {
				require.Equal(t, tc.value, Decode(tc.input), tc.mark)
			})
		}
	})
}

func TestReal(t *testing.T) {
	r := FromUint64(0x8d257ce29d07)

	require.Equal(t, Real{0x8d, 0x25, 0x7c, 0xe2, 0x9d, 0x07}, r)
	require.Equal(t, uint64(0x8d257ce29d07), r.Uint64())
	require.Equal(t, 0x8d-Bias, r.Exponent())
	require.Equal(t, uint64(0x07_9d_e2_7c_25), r.Mantissa())
	require.False(t, r.Negative())

	// Bits above 48 are ignored.
	require.Equal(t, r, FromUint64(0xffff_8d257ce29d07))
}

func TestUnmarshalBinary(t *testing.T) {
	var r Real

	err := r.UnmarshalBinary([]byte{0x88, 0xa9, 0xf6, 0x62, 0x91, 0x42})
	require.NoError(t, err)
	require.Equal(t, FromUint64(0x88a9f6629142), r)

	err = r.UnmarshalBinary([]byte{0x88, 0xa9})
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func TestParseHex(t *testing.T) {
	type TC struct {
		input string
		real  Real
		err   bool
	}

	tcs := []TC{
		{input: "8d257ce29d07", real: FromUint64(0x8d257ce29d07)},
		{input: "0x8d257ce29d07", real: FromUint64(0x8d257ce29d07)},
		{input: "8D257CE29D07", real: FromUint64(0x8d257ce29d07)},
		{input: "8d 25 7c e2 9d 07", real: FromUint64(0x8d257ce29d07)},
		{input: "8d:25:7c:e2:9d:07", real: FromUint64(0x8d257ce29d07)},
		{input: "  000000000000\n", real: Real{}},
		{input: "8d257ce29d", err: true},
		{input: "8d257ce29d0701", err: true},
		{input: "8d257ce29dzz", err: true},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			r, err := ParseHex(tc.input)
			if tc.err {
				require.Error(t, err)
				require.True(t, Error.Has(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.real, r)
		})
	}
}
