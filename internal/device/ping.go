/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

package device

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	PingBytes        = 32
	MinPingLatencyMs = 1
	MaxPingLatencyMs = 50
	DefaultPingDelay = 2 * time.Second
)

var PingTTLs = []int{32, 64, 128}

type Reply struct {
	Address string
	Bytes   int
	Time    time.Duration
	TTL     int
}

func (r Reply) String() string {
	return fmt.Sprintf("Reply from %s: bytes=%d time=%dms TTL=%d", r.Address, r.Bytes, r.Time.Milliseconds(), r.TTL)
}

// Pinger simulates ICMP echo against registry devices. Nothing is sent on
// the wire.
type Pinger struct {
	Rand  *rand.Rand
	Delay time.Duration
	// Sleep waits for d or until ctx is done. Nil uses a timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

func NewPinger(delay time.Duration) *Pinger {
	return &Pinger{
		Rand:  rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x6e6574726f6f6d)),
		Delay: delay,
	}
}

// Ping looks address up in reg. Unknown addresses fail with ErrNoSuchDevice
// and offline devices with ErrNoResponse, both without waiting.
func (p *Pinger) Ping(ctx context.Context, reg *Registry, address string) (Reply, error) {
	d, ok := reg.Lookup(address)
	if !ok {
		return Reply{}, fmt.Errorf("%w: %s", ErrNoSuchDevice, address)
	}

	if !d.Connected() {
		return Reply{}, fmt.Errorf("%w: %s", ErrNoResponse, address)
	}

	if err := p.sleep(ctx, p.Delay); err != nil {
		return Reply{}, err
	}

	return p.Sample(address), nil
}

// Sample draws a reply for address without any delay or registry check.
func (p *Pinger) Sample(address string) Reply {
	ms := MinPingLatencyMs + p.Rand.IntN(MaxPingLatencyMs-MinPingLatencyMs+1)
	return Reply{
		Address: address,
		Bytes:   PingBytes,
		Time:    time.Duration(ms) * time.Millisecond,
		TTL:     PingTTLs[p.Rand.IntN(len(PingTTLs))],
	}
}

func (p *Pinger) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
