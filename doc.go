/*
Package mppp provides arbitrary-precision integer (Int), rational (Rat) and
floating-point (Float) types built on a hybrid storage scheme: small values
live in a fixed inline limb buffer with no heap allocation, larger values
transparently spill into heap-backed storage managed through math/big.

Int and Float are used through pointers, like big.Int; the zero value of
each is ready to use:

	var x, y, z mppp.Int
	x.SetInt64(12)
	y.SetUint64(math.MaxUint64)
	fmt.Println(z.Mul(&x, &y))
	// Output: 221360928884514619380

Values whose magnitude fits two limbs never touch the heap, and arithmetic
on them never calls into math/big. Storage transitions can be driven
explicitly with Promote and Demote, and inspected with IsStatic and
IsDynamic. Buffers discarded by transitions are recycled through a bounded
per-size cache; see FreeCaches.

Int and Float support the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
*/
package mppp
