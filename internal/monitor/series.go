/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

package monitor

const MaxDataPoints = 155

// Series is a bounded latency history for one device, oldest first.
type Series struct {
	Address string
	points  []float64
	last    int
}

func NewSeries(address string) *Series {
	return &Series{Address: address, points: []float64{0, 0}}
}

// Add appends a latency sample in milliseconds, dropping the oldest once
// MaxDataPoints is reached.
func (s *Series) Add(ms float64, ttl int) {
	s.points = append(s.points, ms)
	if len(s.points) > MaxDataPoints {
		s.points = s.points[1:]
	}
	s.last = ttl
}

func (s *Series) Reset() {
	s.points = []float64{0, 0}
	s.last = 0
}

// Points returns a copy of the history. Plots need at least two points, so
// a fresh series holds two zeros.
func (s *Series) Points() []float64 {
	out := make([]float64, len(s.points))
	copy(out, s.points)
	return out
}

func (s *Series) Latest() float64 {
	return s.points[len(s.points)-1]
}

func (s *Series) LastTTL() int {
	return s.last
}

// Average is the mean of the recorded samples, ignoring the zero padding
// of a fresh series.
func (s *Series) Average() float64 {
	var sum float64
	var n int
	for _, p := range s.points {
		if p > 0 {
			sum += p
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
