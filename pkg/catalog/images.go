package catalog

const (
	SizePoster   = "w500"
	SizeProfile  = "w185"
	SizeBackdrop = "original"
)

// ImageURL returns the address of an image at the given size, or "" when the
// entry has no image.
func (c *Client) ImageURL(size string, path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	return c.imageURL + "/" + size + *path
}
