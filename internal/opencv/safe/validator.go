package safe

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"
)

func ValidateMatForOperation(mat *Mat, operation string) error {
	if mat == nil {
		return fmt.Errorf("Mat is nil for operation: %s", operation)
	}

	if !mat.IsValid() {
		return fmt.Errorf("Mat is invalid for operation: %s", operation)
	}

	if mat.Empty() {
		return fmt.Errorf("Mat is empty for operation: %s", operation)
	}

	if mat.Rows() <= 0 || mat.Cols() <= 0 {
		return fmt.Errorf("Mat has invalid dimensions %dx%d for operation: %s",
			mat.Cols(), mat.Rows(), operation)
	}

	return nil
}

func ValidateColorConversion(src *Mat, code gocv.ColorConversionCode) error {
	if err := ValidateMatForOperation(src, "CvtColor"); err != nil {
		return err
	}

	channels := src.Channels()

	switch code {
	case gocv.ColorBGRToGray, gocv.ColorRGBToGray:
		if channels != 3 {
			return fmt.Errorf("BGR/RGB to Gray conversion requires 3 channels, got %d", channels)
		}
	case gocv.ColorRGBAToGray, gocv.ColorBGRAToGray:
		if channels != 4 {
			return fmt.Errorf("RGBA/BGRA to Gray conversion requires 4 channels, got %d", channels)
		}
	case gocv.ColorGrayToBGR, gocv.ColorGrayToRGBA:
		if channels != 1 {
			return fmt.Errorf("Gray to color conversion requires 1 channel, got %d", channels)
		}
	}

	return nil
}

// ValidateDimensions rejects non-positive sizes and sizes whose
// width*height*channels product overflows an int.
func ValidateDimensions(width, height, channels int, operation string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d for operation: %s", width, height, operation)
	}
	if channels <= 0 {
		return fmt.Errorf("invalid channel count %d for operation: %s", channels, operation)
	}

	if int64(width) > math.MaxInt/int64(height)/int64(channels) {
		return fmt.Errorf("dimensions %dx%dx%d overflow buffer size for operation: %s",
			width, height, channels, operation)
	}

	return nil
}

func ValidateBufferLength(actual, expected int, operation string) error {
	if actual != expected {
		return fmt.Errorf("buffer length %d does not match expected %d for operation: %s",
			actual, expected, operation)
	}
	return nil
}
