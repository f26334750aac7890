package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerUnit maps world units to screen pixels in the window runner.
	PixelsPerUnit = 40.0
)
