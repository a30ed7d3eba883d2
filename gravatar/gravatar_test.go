package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	got := URL("a@x.com")
	assert.Equal(t, "https://www.gravatar.com/avatar/743173788aa9166801df2e18f0e7ff24?d=mm&r=pg&s=200", got)
}

func TestURLNormalizesEmail(t *testing.T) {
	// Case and surrounding whitespace must not change the hash
	assert.Equal(t, URL("john@example.com"), URL("  John@Example.COM  "))
	assert.Contains(t, URL("john@example.com"), "d4c74594d841139328695756648b6bd6")
}
