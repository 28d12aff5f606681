package blocklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDisposable(t *testing.T) {
	assert.True(t, IsDisposable("mailinator.com"))
	assert.True(t, IsDisposable("MAILINATOR.COM"))
	assert.True(t, IsDisposable("yopmail.com"))
	assert.False(t, IsDisposable("gmail.com"))
	assert.False(t, IsDisposable(""))
}

func TestIsRoleAccount(t *testing.T) {
	assert.True(t, IsRoleAccount("admin"))
	assert.True(t, IsRoleAccount("Admin"))
	assert.True(t, IsRoleAccount("POSTMASTER"))
	assert.True(t, IsRoleAccount("test"))
	assert.True(t, IsRoleAccount("dummy"))
	assert.False(t, IsRoleAccount("jane.doe"))
	// Exact match only, not substrings
	assert.False(t, IsRoleAccount("administrative"))
}

func TestIsExampleDomain(t *testing.T) {
	assert.True(t, IsExampleDomain("example.com"))
	assert.True(t, IsExampleDomain("Example.ORG"))
	assert.True(t, IsExampleDomain("test.com"))
	assert.True(t, IsExampleDomain("localhost"))
	// Substring match on "example"
	assert.True(t, IsExampleDomain("myexample.io"))
	assert.False(t, IsExampleDomain("gmail.com"))
	assert.False(t, IsExampleDomain("test.io"))
}
