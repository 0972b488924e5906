package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice returns a slice of length size from the pool and a
// function that gives it back. The contents are not zeroed.
//
//	values, release := pool.GetFloat64Slice(n)
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	if cap(*ptr) < size {
		*ptr = make([]float64, size)
	} else {
		*ptr = (*ptr)[:size]
	}

	return *ptr, func() { float64SlicePool.Put(ptr) }
}
