package vector

// Spare exposes the slots past Len so tests can check they hold zero values.
func Spare[T any](v *Vector[T]) []T { return v.buf.ptr[v.len:] }

// Remaining exposes the iterator's whole buffer.
func Remaining[T any](it *IntoIter[T]) []T { return it.buf.ptr }
