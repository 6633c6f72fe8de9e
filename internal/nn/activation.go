package nn

// ReLU applies the rectified linear unit: f(x) = max(0, x).
//
// NaN maps to 0, and so does negative zero.
func ReLU(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}
