package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	tbl := NewTable("MODULE", "METHOD", "URL").
		Row("orders", "GET", "http://localhost:8080/orders").
		Row("users", "POST", "http://localhost:8080/users")

	assert.Equal(t, 2, tbl.Len())

	out := stripAnsi(tbl.String())
	for _, want := range []string{"MODULE", "METHOD", "URL", "orders", "users", "http://localhost:8080/orders"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "orders"), strings.Index(out, "users"), "rows keep insertion order")
}

func TestTableEmpty(t *testing.T) {
	tbl := NewTable("A", "B")
	assert.Zero(t, tbl.Len())
	assert.Contains(t, stripAnsi(tbl.String()), "A")
}
