package entities

import "io"

// Image is an uploaded file before it is stored.
type Image struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// ImageUpdate describes what an order edit does with the stored image.
type ImageUpdate struct {
	New    *Image
	Remove bool
}
