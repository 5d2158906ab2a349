package minio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("GA-2025-0042", "final order (sealed).pdf")

	assert.True(t, strings.HasPrefix(key, "cases/GA-2025-0042/"))
	assert.True(t, strings.HasSuffix(key, "-final_order__sealed_.pdf"))
	assert.NotContains(t, key, " ")
	assert.NotContains(t, key, "(")
}

func TestObjectKey_Unique(t *testing.T) {
	a := ObjectKey("GA-1", "order.pdf")
	b := ObjectKey("GA-1", "order.pdf")
	assert.NotEqual(t, a, b)
}
