package internal

import (
	"strconv"

	"go.uber.org/atomic"
)

var nextUniqueID = atomic.NewInt64(0)

// NextID returns a process-unique identifier of the form "<prefix>-<n>".
func NextID(prefix string) string {
	return prefix + "-" + strconv.FormatInt(nextUniqueID.Inc(), 10)
}
