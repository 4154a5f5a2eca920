package pure

// Result is the pair of outputs memoized by TableizeI3O2.
type Result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

// TableizeI3O2 memoizes pureFn in memo, keyed by its three arguments.
func TableizeI3O2[O1, O2 any](
	pureFn func(uint32, uint32, uint32) (O1, O2),
	memo Table[Result[O1, O2]],
) func(uint32, uint32, uint32) (O1, O2) {
	return func(i1, i2, i3 uint32) (O1, O2) {
		keys := []uint32{i1, i2, i3}
		res, ok := memo.Load(keys)
		if !ok {
			v1, v2 := pureFn(i1, i2, i3)
			res = Result[O1, O2]{O1: v1, O2: v2}
			memo.Store(keys, res)
		}
		return res.O1, res.O2
	}
}
