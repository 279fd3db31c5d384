// SPDX-License-Identifier: MIT
package gray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graymorph/footprint"
	"github.com/katalvlaran/graymorph/gray"
	"github.com/katalvlaran/graymorph/imgutil"
	"github.com/katalvlaran/graymorph/ndarray"
)

// grid8 builds a rank-2 uint8 array from row literals.
func grid8(t *testing.T, rows [][]uint8) *ndarray.Array[uint8] {
	t.Helper()
	flat := make([]uint8, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		flat = append(flat, r...)
	}
	a, err := ndarray.FromFlat(flat, len(rows), len(rows[0]))
	require.NoError(t, err)
	return a
}

// grid64 builds a rank-2 float64 array from row literals.
func grid64(t *testing.T, rows [][]float64) *ndarray.Array[float64] {
	t.Helper()
	flat := make([]float64, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		flat = append(flat, r...)
	}
	a, err := ndarray.FromFlat(flat, len(rows), len(rows[0]))
	require.NoError(t, err)
	return a
}

// blackPixel is a 4x4 all-255 image with one dark pixel off center.
func blackPixel(t *testing.T) *ndarray.Array[uint8] {
	t.Helper()
	img, err := ndarray.Full[uint8](255, 4, 4)
	require.NoError(t, err)
	img.Set(0, 1, 1)
	return img
}

// whitePixel is the complement of blackPixel.
func whitePixel(t *testing.T) *ndarray.Array[uint8] {
	t.Helper()
	img, err := ndarray.New[uint8](4, 4)
	require.NoError(t, err)
	img.Set(255, 1, 1)
	return img
}

// eccentricFootprints are the even-sized boxes whose floor center sits
// off the geometric middle. They expose any asymmetry between erosion,
// dilation and the composite operations.
func eccentricFootprints(t *testing.T) map[string]*footprint.Footprint {
	t.Helper()
	sq, err := footprint.Square(2)
	require.NoError(t, err)
	r22, err := footprint.Rectangle(2, 2)
	require.NoError(t, err)
	r21, err := footprint.Rectangle(2, 1)
	require.NoError(t, err)
	r12, err := footprint.Rectangle(1, 2)
	require.NoError(t, err)
	return map[string]*footprint.Footprint{
		"square(2)":      sq,
		"rectangle(2,2)": r22,
		"rectangle(2,1)": r21,
		"rectangle(1,2)": r12,
	}
}

// TestErosionDilation_Duality pins the complement duality
// erosion(img) == 255 − dilation(255 − img) for every eccentric
// footprint. It only holds when both operations use the identical
// unreflected offset set.
func TestErosionDilation_Duality(t *testing.T) {
	black := blackPixel(t)
	white := whitePixel(t)
	for name, fp := range eccentricFootprints(t) {
		t.Run(name, func(t *testing.T) {
			eroded, err := gray.Erosion(black, fp, nil)
			require.NoError(t, err)
			dilated, err := gray.Dilation(white, fp, nil)
			require.NoError(t, err)
			eroded.EachIndex(func(ix []int) {
				assert.Equal(t, 255-dilated.At(ix...), eroded.At(ix...), "cell %v", ix)
			})
		})
	}
}

// TestOpening_BlackPixelFixedPoint verifies opening leaves a single dark
// pixel untouched for every eccentric footprint: the dark spot is larger
// than nothing the footprint can remove.
func TestOpening_BlackPixelFixedPoint(t *testing.T) {
	black := blackPixel(t)
	for name, fp := range eccentricFootprints(t) {
		t.Run(name, func(t *testing.T) {
			opened, err := gray.Opening(black, fp, nil)
			require.NoError(t, err)
			assert.True(t, opened.Equal(black), "opening must preserve the dark pixel")
		})
	}
}

// TestClosing_WhitePixelFixedPoint is the dual fixed point: closing
// leaves a single bright pixel on black untouched.
func TestClosing_WhitePixelFixedPoint(t *testing.T) {
	white := whitePixel(t)
	for name, fp := range eccentricFootprints(t) {
		t.Run(name, func(t *testing.T) {
			closed, err := gray.Closing(white, fp, nil)
			require.NoError(t, err)
			assert.True(t, closed.Equal(white), "closing must preserve the bright pixel")
		})
	}
}

// TestOpening_RemovesBrightSpeck: opening a lone bright pixel flattens
// the image to zero.
func TestOpening_RemovesBrightSpeck(t *testing.T) {
	white := whitePixel(t)
	for name, fp := range eccentricFootprints(t) {
		t.Run(name, func(t *testing.T) {
			opened, err := gray.Opening(white, fp, nil)
			require.NoError(t, err)
			opened.EachIndex(func(ix []int) {
				assert.Equal(t, uint8(0), opened.At(ix...), "cell %v", ix)
			})
		})
	}
}

// TestClosing_FillsDarkSpeck: closing a lone dark pixel flattens the
// image to 255.
func TestClosing_FillsDarkSpeck(t *testing.T) {
	black := blackPixel(t)
	for name, fp := range eccentricFootprints(t) {
		t.Run(name, func(t *testing.T) {
			closed, err := gray.Closing(black, fp, nil)
			require.NoError(t, err)
			closed.EachIndex(func(ix []int) {
				assert.Equal(t, uint8(255), closed.At(ix...), "cell %v", ix)
			})
		})
	}
}

// TestTophats_SpeckExtraction pins the four tophat/speck combinations:
// white tophat extracts a bright speck exactly and ignores a dark one,
// black tophat the reverse.
func TestTophats_SpeckExtraction(t *testing.T) {
	black := blackPixel(t)
	white := whitePixel(t)
	for name, fp := range eccentricFootprints(t) {
		t.Run(name, func(t *testing.T) {
			wt, err := gray.WhiteTophat(white, fp, nil)
			require.NoError(t, err)
			assert.True(t, wt.Equal(white), "white tophat extracts the bright speck")

			bt, err := gray.BlackTophat(black, fp, nil)
			require.NoError(t, err)
			assert.True(t, bt.Equal(white), "black tophat extracts the dark speck as bright")

			wtBlack, err := gray.WhiteTophat(black, fp, nil)
			require.NoError(t, err)
			wtBlack.EachIndex(func(ix []int) {
				assert.Equal(t, uint8(0), wtBlack.At(ix...))
			})

			btWhite, err := gray.BlackTophat(white, fp, nil)
			require.NoError(t, err)
			btWhite.EachIndex(func(ix []int) {
				assert.Equal(t, uint8(0), btWhite.At(ix...))
			})
		})
	}
}

// floatFixture returns the 5x5 float image and its four expected results
// under the default radius-1 cross.
func floatFixture(t *testing.T) (im, eroded, dilated, opened, closed *ndarray.Array[float64]) {
	t.Helper()
	im = grid64(t, [][]float64{
		{0.55, 0.72, 0.60, 0.54, 0.42},
		{0.65, 0.44, 0.89, 0.96, 0.38},
		{0.79, 0.53, 0.57, 0.93, 0.07},
		{0.09, 0.02, 0.83, 0.78, 0.87},
		{0.98, 0.80, 0.46, 0.78, 0.12},
	})
	eroded = grid64(t, [][]float64{
		{0.55, 0.44, 0.54, 0.42, 0.38},
		{0.44, 0.44, 0.44, 0.38, 0.07},
		{0.09, 0.02, 0.53, 0.07, 0.07},
		{0.02, 0.02, 0.02, 0.78, 0.07},
		{0.09, 0.02, 0.46, 0.12, 0.12},
	})
	dilated = grid64(t, [][]float64{
		{0.72, 0.72, 0.89, 0.96, 0.54},
		{0.79, 0.89, 0.96, 0.96, 0.96},
		{0.79, 0.79, 0.93, 0.96, 0.93},
		{0.98, 0.83, 0.83, 0.93, 0.87},
		{0.98, 0.98, 0.83, 0.78, 0.87},
	})
	opened = grid64(t, [][]float64{
		{0.55, 0.55, 0.54, 0.54, 0.42},
		{0.55, 0.44, 0.54, 0.44, 0.38},
		{0.44, 0.53, 0.53, 0.78, 0.07},
		{0.09, 0.02, 0.78, 0.78, 0.78},
		{0.09, 0.46, 0.46, 0.78, 0.12},
	})
	closed = grid64(t, [][]float64{
		{0.72, 0.72, 0.72, 0.54, 0.54},
		{0.72, 0.72, 0.89, 0.96, 0.54},
		{0.79, 0.79, 0.79, 0.93, 0.87},
		{0.79, 0.79, 0.83, 0.78, 0.87},
		{0.98, 0.83, 0.78, 0.78, 0.78},
	})
	return im, eroded, dilated, opened, closed
}

// TestFloat_DefaultFootprint runs the four base operations on the float
// fixture with the implicit cross. Reductions select input elements, so
// the comparison is exact.
func TestFloat_DefaultFootprint(t *testing.T) {
	im, wantEroded, wantDilated, wantOpened, wantClosed := floatFixture(t)

	got, err := gray.Erosion(im, nil, nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(wantEroded), "erosion")

	got, err = gray.Dilation(im, nil, nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(wantDilated), "dilation")

	got, err = gray.Opening(im, nil, nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(wantOpened), "opening")

	got, err = gray.Closing(im, nil, nil)
	require.NoError(t, err)
	assert.True(t, got.Equal(wantClosed), "closing")
}

// TestFloat_TophatComposition checks the tophat definitions against the
// composed fixture results, including saturation-free float subtraction.
func TestFloat_TophatComposition(t *testing.T) {
	im, _, _, opened, closed := floatFixture(t)

	wt, err := gray.WhiteTophat(im, nil, nil)
	require.NoError(t, err)
	wt.EachIndex(func(ix []int) {
		assert.InDelta(t, im.At(ix...)-opened.At(ix...), wt.At(ix...), 1e-15, "cell %v", ix)
	})

	bt, err := gray.BlackTophat(im, nil, nil)
	require.NoError(t, err)
	bt.EachIndex(func(ix []int) {
		assert.InDelta(t, closed.At(ix...)-im.At(ix...), bt.At(ix...), 1e-15, "cell %v", ix)
	})
}

// TestUint16_DefaultFootprint re-encodes the float fixture to uint16 and
// checks the same results: rounding is monotone, so min/max commute with
// the encoding.
func TestUint16_DefaultFootprint(t *testing.T) {
	im, eroded, dilated, opened, closed := floatFixture(t)

	im16, err := imgutil.AsUint16(im)
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		op   func(*ndarray.Array[uint16], *footprint.Footprint, *ndarray.Array[uint16]) (*ndarray.Array[uint16], error)
		want *ndarray.Array[float64]
	}{
		{"erosion", gray.Erosion[uint16], eroded},
		{"dilation", gray.Dilation[uint16], dilated},
		{"opening", gray.Opening[uint16], opened},
		{"closing", gray.Closing[uint16], closed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			want16, err := imgutil.AsUint16(tc.want)
			require.NoError(t, err)
			got, err := tc.op(im16, nil, nil)
			require.NoError(t, err)
			assert.True(t, got.Equal(want16))
		})
	}
}

// TestDiscontiguousOut writes results through a stepped view of a larger
// buffer: touched cells carry the reduction, skipped cells keep their
// prior contents.
func TestDiscontiguousOut(t *testing.T) {
	image := grid8(t, [][]uint8{
		{5, 6, 2},
		{7, 2, 2},
		{3, 5, 1},
	})

	big, err := ndarray.New[uint8](5, 5)
	require.NoError(t, err)
	out, err := big.Step(2, 2)
	require.NoError(t, err)

	_, err = gray.Dilation(image, nil, out)
	require.NoError(t, err)
	assert.True(t, big.Equal(grid8(t, [][]uint8{
		{7, 0, 6, 0, 6},
		{0, 0, 0, 0, 0},
		{7, 0, 7, 0, 2},
		{0, 0, 0, 0, 0},
		{7, 0, 5, 0, 5},
	})), "dilation through stepped view")

	_, err = gray.Erosion(image, nil, out)
	require.NoError(t, err)
	assert.True(t, big.Equal(grid8(t, [][]uint8{
		{5, 0, 2, 0, 2},
		{0, 0, 0, 0, 0},
		{2, 0, 2, 0, 1},
		{0, 0, 0, 0, 0},
		{3, 0, 1, 0, 1},
	})), "erosion through stepped view")
}

// TestAliasedOut allows out to be the image itself: scratch buffering
// must keep the pass correct.
func TestAliasedOut(t *testing.T) {
	image := grid8(t, [][]uint8{
		{5, 6, 2},
		{7, 2, 2},
		{3, 5, 1},
	})
	want, err := gray.Dilation(image.Clone(), nil, nil)
	require.NoError(t, err)

	got, err := gray.Dilation(image, nil, image)
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "in-place dilation equals out-of-place")
	assert.True(t, image.Equal(want), "result lands in the aliased buffer")
}

// Test1DErosion covers rank 1 with the implicit 3-cell cross.
func Test1DErosion(t *testing.T) {
	image, err := ndarray.FromFlat([]uint8{1, 2, 3, 2, 1}, 5)
	require.NoError(t, err)

	eroded, err := gray.Erosion(image, nil, nil)
	require.NoError(t, err)

	want, err := ndarray.FromFlat([]uint8{1, 1, 2, 1, 1}, 5)
	require.NoError(t, err)
	assert.True(t, eroded.Equal(want))
}

// TestDefaultFootprintEqualsUnitDiamond: a nil footprint on a rank-2
// image must behave exactly like Diamond(1), for all six operations.
func TestDefaultFootprintEqualsUnitDiamond(t *testing.T) {
	image := grid8(t, [][]uint8{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 1, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 1, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	})
	diamond, err := footprint.Diamond(1)
	require.NoError(t, err)

	ops := map[string]func(*ndarray.Array[uint8], *footprint.Footprint, *ndarray.Array[uint8]) (*ndarray.Array[uint8], error){
		"erosion":     gray.Erosion[uint8],
		"dilation":    gray.Dilation[uint8],
		"opening":     gray.Opening[uint8],
		"closing":     gray.Closing[uint8],
		"whiteTophat": gray.WhiteTophat[uint8],
		"blackTophat": gray.BlackTophat[uint8],
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			explicit, err := op(image, diamond, nil)
			require.NoError(t, err)
			implicit, err := op(image, nil, nil)
			require.NoError(t, err)
			assert.True(t, implicit.Equal(explicit))
		})
	}
}

// cubeInBox returns a 7x7x7 binary volume with a 3x3x3 block of ones
// centered inside.
func cubeInBox(t *testing.T) *ndarray.Array[uint8] {
	t.Helper()
	vol, err := ndarray.New[uint8](7, 7, 7)
	require.NoError(t, err)
	for z := 2; z < 5; z++ {
		for y := 2; y < 5; y++ {
			for x := 2; x < 5; x++ {
				vol.Set(1, z, y, x)
			}
		}
	}
	return vol
}

// Test3D_OpeningDefaultFootprint: opening a 3-cube with the implicit 3-D
// cross erodes it to the center voxel and re-grows the axis cross.
func Test3D_OpeningDefaultFootprint(t *testing.T) {
	vol := cubeInBox(t)

	opened, err := gray.Opening(vol, nil, nil)
	require.NoError(t, err)

	cross, err := footprint.Cross(3)
	require.NoError(t, err)
	want, err := ndarray.New[uint8](7, 7, 7)
	require.NoError(t, err)
	for z := 0; z < 3; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if cross.At(z, y, x) {
					want.Set(1, z+2, y+2, x+2)
				}
			}
		}
	}
	assert.True(t, opened.Equal(want), "opened cube must be the centered axis cross")
}

// Test3D_CubeFootprintFixedPoint: opening and closing a 3-cube with the
// matching 3x3x3 box reproduce the volume exactly.
func Test3D_CubeFootprintFixedPoint(t *testing.T) {
	vol := cubeInBox(t)
	cube, err := footprint.Cube(3)
	require.NoError(t, err)

	opened, err := gray.Opening(vol, cube, nil)
	require.NoError(t, err)
	assert.True(t, opened.Equal(vol), "opening")

	closed, err := gray.Closing(vol, cube, nil)
	require.NoError(t, err)
	assert.True(t, closed.Equal(vol), "closing")
}

// Test3D_Tophats exercises the tophats at rank 3 with the implicit cross
// against their composed definitions.
func Test3D_Tophats(t *testing.T) {
	vol := cubeInBox(t)

	opened, err := gray.Opening(vol, nil, nil)
	require.NoError(t, err)
	wt, err := gray.WhiteTophat(vol, nil, nil)
	require.NoError(t, err)
	wt.EachIndex(func(ix []int) {
		assert.Equal(t, vol.At(ix...)-opened.At(ix...), wt.At(ix...), "cell %v", ix)
	})

	closed, err := gray.Closing(vol, nil, nil)
	require.NoError(t, err)
	bt, err := gray.BlackTophat(vol, nil, nil)
	require.NoError(t, err)
	bt.EachIndex(func(ix []int) {
		assert.Equal(t, closed.At(ix...)-vol.At(ix...), bt.At(ix...), "cell %v", ix)
	})
}

// TestTophat_SaturatesUnsigned: a constant unsigned image yields exactly
// zero tophats, never a wrapped value, even with even footprints whose
// boundary handling perturbs the composite.
func TestTophat_SaturatesUnsigned(t *testing.T) {
	flat, err := ndarray.Full[uint8](100, 6, 6)
	require.NoError(t, err)
	sq, err := footprint.Square(2)
	require.NoError(t, err)

	wt, err := gray.WhiteTophat(flat, sq, nil)
	require.NoError(t, err)
	wt.EachIndex(func(ix []int) {
		assert.Equal(t, uint8(0), wt.At(ix...), "no wraparound at cell %v", ix)
	})

	bt, err := gray.BlackTophat(flat, sq, nil)
	require.NoError(t, err)
	bt.EachIndex(func(ix []int) {
		assert.Equal(t, uint8(0), bt.At(ix...), "no wraparound at cell %v", ix)
	})
}

// TestSignedElements covers a signed element type: identity padding must
// use the most negative value for dilation, not zero.
func TestSignedElements(t *testing.T) {
	image, err := ndarray.FromFlat([]int32{-5, -9, -3, -7, -1}, 5)
	require.NoError(t, err)

	dilated, err := gray.Dilation(image, nil, nil)
	require.NoError(t, err)
	want, err := ndarray.FromFlat([]int32{-5, -3, -3, -1, -1}, 5)
	require.NoError(t, err)
	assert.True(t, dilated.Equal(want), "negative maxima survive boundary padding")

	eroded, err := gray.Erosion(image, nil, nil)
	require.NoError(t, err)
	wantEroded, err := ndarray.FromFlat([]int32{-9, -9, -9, -7, -7}, 5)
	require.NoError(t, err)
	assert.True(t, eroded.Equal(wantEroded))
}

// TestValidation covers the full error taxonomy through errors.Is.
func TestValidation(t *testing.T) {
	image := grid8(t, [][]uint8{{1, 2}, {3, 4}})

	_, err := gray.Erosion[uint8](nil, nil, nil)
	assert.ErrorIs(t, err, gray.ErrUnsupportedInput, "nil image")

	wrongOut, _ := ndarray.New[uint8](3, 3)
	_, err = gray.Dilation(image, nil, wrongOut)
	assert.ErrorIs(t, err, gray.ErrShapeMismatch, "out shape differs")

	cross3, err := footprint.Cross(3)
	require.NoError(t, err)
	_, err = gray.Opening(image, cross3, nil)
	assert.ErrorIs(t, err, gray.ErrRankMismatch, "rank-3 footprint on rank-2 image")

	_, err = gray.WhiteTophat[uint8](nil, nil, nil)
	assert.ErrorIs(t, err, gray.ErrUnsupportedInput)
	_, err = gray.BlackTophat(image, cross3, nil)
	assert.ErrorIs(t, err, gray.ErrRankMismatch)
	_, err = gray.Closing(image, nil, wrongOut)
	assert.ErrorIs(t, err, gray.ErrShapeMismatch)
}

// TestImageNotMutated: operations with a separate out buffer must leave
// the input image untouched.
func TestImageNotMutated(t *testing.T) {
	image := grid8(t, [][]uint8{
		{5, 6, 2},
		{7, 2, 2},
		{3, 5, 1},
	})
	snapshot := image.Clone()

	_, err := gray.Opening(image, nil, nil)
	require.NoError(t, err)
	assert.True(t, image.Equal(snapshot))

	out, err := ndarray.New[uint8](3, 3)
	require.NoError(t, err)
	_, err = gray.BlackTophat(image, nil, out)
	require.NoError(t, err)
	assert.True(t, image.Equal(snapshot))
}
