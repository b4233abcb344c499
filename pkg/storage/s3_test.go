package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMediaURL_Empty(t *testing.T) {
	c := &Client{bucket: "content-media", region: "us-east-1"}

	assert.Equal(t, PlaceholderImageURL, c.ResolveMediaURL(""))
}

func TestResolveMediaURL_AbsoluteURL(t *testing.T) {
	c := &Client{bucket: "content-media", region: "us-east-1"}

	url := "https://cdn.example.com/a.jpg"
	assert.Equal(t, url, c.ResolveMediaURL(url))
}

func TestResolveMediaURL_BucketRelativePath(t *testing.T) {
	c := &Client{bucket: "content-media", region: "us-east-1"}

	got := c.ResolveMediaURL("content-media/items/42/cover.jpg")
	assert.Equal(t, "https://content-media.s3.us-east-1.amazonaws.com/items/42/cover.jpg", got)
}

func TestPublicURL_MinIOEndpoint(t *testing.T) {
	c := &Client{
		bucket:     "content-media",
		endpoint:   "http://localhost:9000",
		disableSSL: true,
	}

	got := c.PublicURL("items/42/cover.jpg")
	assert.Equal(t, "http://localhost:9000/content-media/items/42/cover.jpg", got)
}

func TestPublicURL_DefaultRegion(t *testing.T) {
	c := &Client{bucket: "content-media"}

	got := c.PublicURL("k.jpg")
	assert.Equal(t, "https://content-media.s3.us-east-1.amazonaws.com/k.jpg", got)
}
