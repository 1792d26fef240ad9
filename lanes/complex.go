// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

// Complex lanes keep the real and imaginary parts in two parallel registers so
// that add, sub and mul become plain float lane operations. Load and Store
// deinterleave and reinterleave the (re, im) pairs of the source slice.

// C64 is the lane contract for complex64: 4 complex lanes per register pair.
type C64 struct{}

// Complex64x4 holds 4 complex64 lanes as separate real and imaginary parts.
type Complex64x4 struct{ re, im [4]float32 }

func (C64) LaneSize() int { return 4 }

func (C64) PrefetchDistance() int { return 6 }

func (C64) HasHardwareSupport() bool { return hardware }

func (C64) Load(src []complex64) Complex64x4 {
	var v Complex64x4
	_ = src[3]
	for i := range 4 {
		v.re[i] = real(src[i])
		v.im[i] = imag(src[i])
	}
	return v
}

func (C64) Store(dst []complex64, v Complex64x4) {
	_ = dst[3]
	for i := range 4 {
		dst[i] = complex(v.re[i], v.im[i])
	}
}

func (C64) Add(a, b Complex64x4) Complex64x4 {
	for i := range 4 {
		a.re[i] += b.re[i]
		a.im[i] += b.im[i]
	}
	return a
}

func (C64) Sub(a, b Complex64x4) Complex64x4 {
	for i := range 4 {
		a.re[i] -= b.re[i]
		a.im[i] -= b.im[i]
	}
	return a
}

// Mul computes (a+bi)(c+di) = (ac-bd) + (ad+bc)i per lane.
func (C64) Mul(x, y Complex64x4) Complex64x4 {
	var r Complex64x4
	for i := range 4 {
		ac := x.re[i] * y.re[i]
		bd := x.im[i] * y.im[i]
		ad := x.re[i] * y.im[i]
		bc := x.im[i] * y.re[i]
		r.re[i] = ac - bd
		r.im[i] = ad + bc
	}
	return r
}

func (C64) Broadcast(s complex64) Complex64x4 {
	re, im := real(s), imag(s)
	return Complex64x4{
		re: [4]float32{re, re, re, re},
		im: [4]float32{im, im, im, im},
	}
}

// HorizontalSum reduces the real and imaginary lanes independently.
func (C64) HorizontalSum(v Complex64x4) complex64 {
	return complex(sum4(&v.re), sum4(&v.im))
}

func (C64) Prefetch(src []complex64) { prefetch(src) }

// C128 is the lane contract for complex128: 2 complex lanes per register pair.
type C128 struct{}

// Complex128x2 holds 2 complex128 lanes as separate real and imaginary parts.
type Complex128x2 struct{ re, im [2]float64 }

func (C128) LaneSize() int { return 2 }

func (C128) PrefetchDistance() int { return 8 }

func (C128) HasHardwareSupport() bool { return hardware }

func (C128) Load(src []complex128) Complex128x2 {
	_ = src[1]
	return Complex128x2{
		re: [2]float64{real(src[0]), real(src[1])},
		im: [2]float64{imag(src[0]), imag(src[1])},
	}
}

func (C128) Store(dst []complex128, v Complex128x2) {
	_ = dst[1]
	dst[0] = complex(v.re[0], v.im[0])
	dst[1] = complex(v.re[1], v.im[1])
}

func (C128) Add(a, b Complex128x2) Complex128x2 {
	for i := range 2 {
		a.re[i] += b.re[i]
		a.im[i] += b.im[i]
	}
	return a
}

func (C128) Sub(a, b Complex128x2) Complex128x2 {
	for i := range 2 {
		a.re[i] -= b.re[i]
		a.im[i] -= b.im[i]
	}
	return a
}

// Mul computes (a+bi)(c+di) = (ac-bd) + (ad+bc)i per lane.
func (C128) Mul(x, y Complex128x2) Complex128x2 {
	var r Complex128x2
	for i := range 2 {
		ac := x.re[i] * y.re[i]
		bd := x.im[i] * y.im[i]
		ad := x.re[i] * y.im[i]
		bc := x.im[i] * y.re[i]
		r.re[i] = ac - bd
		r.im[i] = ad + bc
	}
	return r
}

func (C128) Broadcast(s complex128) Complex128x2 {
	re, im := real(s), imag(s)
	return Complex128x2{re: [2]float64{re, re}, im: [2]float64{im, im}}
}

// HorizontalSum reduces the real and imaginary lanes independently.
func (C128) HorizontalSum(v Complex128x2) complex128 {
	return complex(v.re[0]+v.re[1], v.im[0]+v.im[1])
}

func (C128) Prefetch(src []complex128) { prefetch(src) }
