// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

// eps is a small value used to avoid floating point errors.
const eps = 1e-6
