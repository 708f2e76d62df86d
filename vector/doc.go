// Package vector provides Vector, a growable contiguous array with explicit
// capacity management, and RawBuffer, the fixed-capacity allocation it is
// built on.
//
// 🚀 What is inside?
//
//   - RawBuffer[T] – owns exactly one backing array of Cap() slots (none when
//     Cap() == 0). Grow doubles the capacity (minimum 1); requests whose byte
//     size would exceed the addressable range panic with ErrCapacityOverflow.
//   - Vector[T] – a length over a RawBuffer. Slots [0, Len()) are live, the
//     rest are zero. Elements leaving the vector have their slot zeroed, so a
//     Vector never pins memory a caller has already removed.
//   - IntoIter[T] – takes the buffer out of a Vector and yields it from
//     either end, zeroing every slot it hands out. Close drops whatever is
//     left exactly once.
//
// ✨ Failure model
//
//   - Pop and Get report absence with a comma-ok result.
//   - Insert past Len, Remove/At/Set/Swap outside [0, Len()) are contract
//     violations and panic with an error wrapping ErrIndexOutOfRange.
//
// ⚙️ Complexity
//
//	Push           amortized O(1)
//	Pop            O(1)
//	Insert/Remove  O(n - at)
//	At/Set/Get     O(1)
//	Clear          O(n)
//
// A Vector is not safe for concurrent use.
package vector
