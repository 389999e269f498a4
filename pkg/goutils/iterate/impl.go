/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package iterate

// Calls `do` for each data of `forEach` iterator until first error
func ForEachError[T any](forEach ForEachFunction[T], do func(T) error) (err error) {
	forEach(func(d T) {
		if err != nil {
			return
		}
		err = do(d)
	})
	return err
}

// Slice is a function type wrapper for naked slices.
// Slice result can be passed as a first argument to `ForEachError`, `FindFirst` and `FindFirstError` routines
func Slice[T any](slice []T) ForEachFunction[T] {
	return func(enum func(T)) {
		for _, d := range slice {
			enum(d)
		}
	}
}

// FindFirst find first data by `forEach` iterator, using test function.
func FindFirst[T any](forEach ForEachFunction[T], test func(T) bool) (ok bool, data T) {
	forEach(func(d T) {
		if ok {
			return
		}
		if ok = test(d); ok {
			data = d
		}
	})
	return ok, data
}

// FindFirstError find first data with error by `forEach` iterator, using test function.
func FindFirstError[T any](forEach ForEachFunction[T], test func(T) error) (data T, err error) {
	forEach(func(d T) {
		if err != nil {
			return
		}
		if err = test(d); err != nil {
			data = d
		}
	})
	return data, err
}
