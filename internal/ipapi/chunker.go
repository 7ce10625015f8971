package ipapi

import "iter"

// chunk groups the items of seq into ordered slices of at most size elements.
// The last chunk may be shorter and empty chunks are never yielded, so the
// concatenation of all chunks reproduces the input exactly. Items are passed
// through as produced, never compared or padded, so zero-value queries
// survive intact. The source is consumed lazily: at most one chunk of items
// is buffered at a time, and breaking out of the range stops consumption.
func chunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		buf := make([]T, 0, size)
		for v := range seq {
			buf = append(buf, v)
			if len(buf) == size {
				if !yield(buf) {
					return
				}
				buf = make([]T, 0, size)
			}
		}
		if len(buf) > 0 {
			yield(buf)
		}
	}
}
