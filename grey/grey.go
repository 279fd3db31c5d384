// Package grey is the legacy spelling of package gray, kept so existing
// import paths continue to compile. It forwards every operation to gray
// unchanged and emits a one-time deprecation notice on first use; no
// kernel logic lives here.
//
// Deprecated: import github.com/katalvlaran/graymorph/gray instead.
package grey

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graymorph/footprint"
	"github.com/katalvlaran/graymorph/gray"
	"github.com/katalvlaran/graymorph/ndarray"
)

var noticeOnce sync.Once

// notice logs the deprecation warning exactly once per process.
func notice() {
	noticeOnce.Do(func() {
		logrus.WithField("package", "grey").
			Warn("package grey is deprecated; import graymorph/gray instead")
	})
}

// Erosion forwards to gray.Erosion.
//
// Deprecated: use gray.Erosion.
func Erosion[T ndarray.Number](image *ndarray.Array[T], fp *footprint.Footprint, out *ndarray.Array[T]) (*ndarray.Array[T], error) {
	notice()
	return gray.Erosion(image, fp, out)
}

// Dilation forwards to gray.Dilation.
//
// Deprecated: use gray.Dilation.
func Dilation[T ndarray.Number](image *ndarray.Array[T], fp *footprint.Footprint, out *ndarray.Array[T]) (*ndarray.Array[T], error) {
	notice()
	return gray.Dilation(image, fp, out)
}

// Opening forwards to gray.Opening.
//
// Deprecated: use gray.Opening.
func Opening[T ndarray.Number](image *ndarray.Array[T], fp *footprint.Footprint, out *ndarray.Array[T]) (*ndarray.Array[T], error) {
	notice()
	return gray.Opening(image, fp, out)
}

// Closing forwards to gray.Closing.
//
// Deprecated: use gray.Closing.
func Closing[T ndarray.Number](image *ndarray.Array[T], fp *footprint.Footprint, out *ndarray.Array[T]) (*ndarray.Array[T], error) {
	notice()
	return gray.Closing(image, fp, out)
}

// WhiteTophat forwards to gray.WhiteTophat.
//
// Deprecated: use gray.WhiteTophat.
func WhiteTophat[T ndarray.Number](image *ndarray.Array[T], fp *footprint.Footprint, out *ndarray.Array[T]) (*ndarray.Array[T], error) {
	notice()
	return gray.WhiteTophat(image, fp, out)
}

// BlackTophat forwards to gray.BlackTophat.
//
// Deprecated: use gray.BlackTophat.
func BlackTophat[T ndarray.Number](image *ndarray.Array[T], fp *footprint.Footprint, out *ndarray.Array[T]) (*ndarray.Array[T], error) {
	notice()
	return gray.BlackTophat(image, fp, out)
}
