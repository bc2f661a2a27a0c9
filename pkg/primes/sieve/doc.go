// Package sieve implements the wheel-based sieves.
//
// A Template is derived once from a wheel: one flag per spoke, indexed by n/3, and a
// next-spoke table mapping any residue to the first spoke at or above it. InitKernel
// sieves the first circumference to produce the Kernel, the factor base for every later
// segment. Segment sieves one circumference-wide range using only the kernel; it never
// writes to the template or kernel, so any number of segments may be sieved at once.
//
// The kernel holds every prime below the circumference C, so it can only sieve numbers
// below C². Segment reports ErrKernelInsufficient past that point instead of returning
// composites.
package sieve
