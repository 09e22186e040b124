// Package real48 decodes the legacy 48-bit packed real (the Turbo Pascal
// "Real" type) into a float64.
//
// # Layout
//
// Records are read big-endian, six bytes each. Byte 0 holds the exponent and
// byte 5 holds the sign bit followed by the most significant mantissa bits.
//
//	| Byte  | 0        | 1        | 2        | 3        | 4        | 5        |
//	|-------|----------|----------|----------|----------|----------|----------|
//	| Bits  | 76543210 | 76543210 | 76543210 | 76543210 | 76543210 | 76543210 |
//	| Value | EEEEEEEE | MMMMMMMM | MMMMMMMM | MMMMMMMM | MMMMMMMM | SMMMMMMM |
//	|-------|----------|----------|----------|----------|----------|----------|
//
//	E: exponent, biased by 129
//	M: mantissa, 39 bits, most significant in byte 5 and least in byte 1
//	S: sign (1 is negative)
//
// The value is:
//
//	value = ±(1 + mantissa) * 2^(E - 129)
//
// Where mantissa is the fraction 0.M (in [0, 1)). Byte 5 bit 6 is worth 2^-1,
// byte 5 bit 0 is worth 2^-7, byte 4 bit 7 is worth 2^-8 and so on down to
// byte 1 bit 0 at 2^-39.
//
// All 48 bits zero is the only encoding of zero. There is no negative zero,
// infinity, NaN or denormal form, so Decode is total over all 2^48 inputs.
//
// # Examples
//
//	| Hex               | Value              |
//	|-------------------|--------------------|
//	| 8d 25 7c e2 9d 07 | 4339.735588349402  |
//	| 88 a9 f6 62 91 42 | 194.5679163134191  |
//	| 81 f1 d2 3b 23 00 | 1.0010752468097053 |
//	| 00 00 00 00 00 00 | 0                  |
//	|-------------------|--------------------|
package real48
