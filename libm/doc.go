// Copyright 2025 go-libm Authors
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

// Package libm provides software implementations of elementary
// floating-point functions for targets without a trusted native math
// library.
//
// Functions operate directly on IEEE 754 bit patterns (see package ieee) to
// classify their inputs and pick an algorithm per magnitude range, so
// special values behave like the C library functions of the same name.
//
// # Functions
//
// Single precision:
//   - Fabsf(x float32) float32 - |x|
//   - Truncf(x float32) float32 - x rounded toward zero
//   - Fmaf(x, y, z float32) float32 - x*y + z with a single rounding
//   - Exp2f(x float32) float32 - 2^x
//   - Acoshf(x float32) float32 - inverse hyperbolic cosine
//
// Double precision:
//   - Fabs(x float64) float64
//   - Trunc(x float64) float64
//   - Powi(x float64, n uint) float64 - x^n for non-negative integer n
//   - Exp2(x float64) float64
//   - Acosh(x float64) float64
//
// The logarithm, square root and real power collaborators (Logf, Log1pf,
// Sqrtf, Powf and their float64 forms) delegate to Go's math package.
//
// # Accuracy
//
// Errors are bounded in ULPs, not correctly rounded:
//   - Fabsf, Fabs, Truncf, Trunc: exact
//   - Fmaf: a few ULP on finite operands, exact IEEE 754 special values
//   - Powi: grows with the number of set bits in n
//   - Exp2f, Exp2: those of Powf and Pow
//   - Acoshf: up to 2 ULP in [1, 1.125]
//
// # Concurrency
//
// All functions are pure and allocation free; they may be called from any
// number of goroutines.
package libm
