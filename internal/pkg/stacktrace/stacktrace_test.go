package stacktrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalPaths(t *testing.T) {
	stack := []byte(`goroutine 1 [running]:
runtime/debug.Stack()
	/usr/local/go/src/runtime/debug/stack.go:26 +0x5e
github.com/shandysiswandi/storefront/internal/order/usecase.(*Usecase).CreateOrder(...)
	/app/internal/order/usecase/create_order.go:88 +0x1a
github.com/other/lib.Do()
	/go/pkg/mod/github.com/other/lib/do.go:10 +0x2
main.main()
	/app/main.go:12
`)

	assert.Equal(t, []string{"internal/order/usecase/create_order.go:88"}, InternalPaths(stack))
	assert.Empty(t, InternalPaths(nil))
}
