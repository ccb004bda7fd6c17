package mandel

// Bailout is the squared magnitude past which an orbit has escaped.
const Bailout = 4.0

// Escape iterates z <- z^2 + c from z = 0 for at most threshold steps.
// It returns the number of steps taken and whether |z|^2 exceeded Bailout.
func Escape(x0, y0 float64, threshold int) (n int, escaped bool) {
	var x, y, x2, y2 float64
	for x2+y2 <= Bailout && n < threshold {
		y = (x+x)*y + y0
		x = x2 - y2 + x0
		x2 = x * x
		y2 = y * y
		n++
	}
	return n, x2+y2 > Bailout
}

// InSet reports whether c = x0 + y0i stays bounded for threshold steps.
func InSet(x0, y0 float64, threshold int) bool {
	_, escaped := Escape(x0, y0, threshold)
	return !escaped
}

// Iterations is the escape time of c, or threshold when c stays bounded.
func Iterations(x0, y0 float64, threshold int) int {
	n, escaped := Escape(x0, y0, threshold)
	if !escaped {
		return threshold
	}
	return n
}
