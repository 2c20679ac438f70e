package conversion

import (
	"fmt"
	"image"
	"image/draw"

	"frame-bridge/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// RGBAChannels is the bytes-per-pixel of the frame wire format.
const RGBAChannels = 4

// ExpectedLength returns width*height*channels, rejecting sizes that are not
// strictly positive or that overflow an int.
func ExpectedLength(width, height, channels int) (int, error) {
	if err := safe.ValidateDimensions(width, height, channels, "expected length"); err != nil {
		return 0, err
	}
	return width * height * channels, nil
}

// BytesToMat builds an 8-bit Mat of the given geometry holding a copy of
// buf. The length is validated before the Mat is allocated, so a declared
// geometry that disagrees with the buffer never reaches OpenCV.
func BytesToMat(buf []byte, width, height, channels int) (*safe.Mat, error) {
	matType, err := matTypeFor(channels)
	if err != nil {
		return nil, err
	}

	expected, err := ExpectedLength(width, height, channels)
	if err != nil {
		return nil, err
	}
	if err := safe.ValidateBufferLength(len(buf), expected, "bytes to Mat"); err != nil {
		return nil, err
	}

	mat, err := safe.NewTaggedMat(height, width, matType, "input_frame")
	if err != nil {
		return nil, fmt.Errorf("input Mat creation failed: %w", err)
	}

	if err := mat.CopyFromBytes(buf); err != nil {
		mat.Close()
		return nil, err
	}

	return mat, nil
}

// MatToBytes serializes the Mat's storage into a newly allocated slice.
func MatToBytes(src *safe.Mat) ([]byte, error) {
	if err := safe.ValidateMatForOperation(src, "Mat to bytes"); err != nil {
		return nil, err
	}
	return src.ToBytes()
}

// ImageToRGBA flattens any image.Image into a row-major RGBA buffer.
func ImageToRGBA(img image.Image) ([]byte, int, int, error) {
	if img == nil {
		return nil, 0, 0, fmt.Errorf("input image is nil")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, 0, 0, fmt.Errorf("image has invalid dimensions %dx%d", width, height)
	}

	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == width*RGBAChannels && bounds.Min == (image.Point{}) {
		out := make([]byte, len(rgba.Pix))
		copy(out, rgba.Pix)
		return out, width, height, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst.Pix, width, height, nil
}

// RGBAToImage wraps a copy of buf as an *image.RGBA.
func RGBAToImage(buf []byte, width, height int) (*image.RGBA, error) {
	expected, err := ExpectedLength(width, height, RGBAChannels)
	if err != nil {
		return nil, err
	}
	if err := safe.ValidateBufferLength(len(buf), expected, "RGBA to image"); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, buf)
	return img, nil
}

func matTypeFor(channels int) (gocv.MatType, error) {
	switch channels {
	case 1:
		return gocv.MatTypeCV8UC1, nil
	case 3:
		return gocv.MatTypeCV8UC3, nil
	case 4:
		return gocv.MatTypeCV8UC4, nil
	default:
		return gocv.MatTypeCV8UC1, fmt.Errorf("unsupported channel count: %d", channels)
	}
}
