package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTargetURL(t *testing.T) {
	url, err := BuildTargetURL("/store/products/abc", "")
	require.NoError(t, err)
	assert.Equal(t, "http://wax-store/products/abc", url)

	url, err = BuildTargetURL("/lobby/presence/list", "category=house")
	require.NoError(t, err)
	assert.Equal(t, "http://wax-lobby/presence/list?category=house", url)

	url, err = BuildTargetURL("/user", "")
	require.NoError(t, err)
	assert.Equal(t, "http://wax-user/", url)
}

func TestBuildTargetURLRejectsUnknownService(t *testing.T) {
	_, err := BuildTargetURL("/admin/secrets", "")
	assert.Error(t, err)

	_, err = BuildTargetURL("/", "")
	assert.Error(t, err)
}
