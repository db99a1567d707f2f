package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// copyTo maps a read model onto its response DTO by field name. Field sets
// are fixed at compile time, so a copy failure is a programming error.
func copyTo[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		panic(fmt.Sprintf("response: copy %T: %v", src, err))
	}
	return &dst
}

func copyAll[T any, S any](src []*S) []*T {
	out := make([]*T, len(src))
	for i, s := range src {
		out[i] = copyTo[T](s)
	}
	return out
}
