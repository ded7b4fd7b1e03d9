/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

// Package monitor draws the live traffic view a hub opens when traffic
// monitoring is enabled. Latencies come from the simulated pinger.
package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/floof-os/netroom/internal/device"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

const maxPlots = 4

var plotColors = []ui.Color{ui.ColorRed, ui.ColorBlue, ui.ColorGreen, ui.ColorYellow}

type Dashboard struct {
	Pinger   *device.Pinger
	Interval time.Duration
}

func NewDashboard(p *device.Pinger) *Dashboard {
	return &Dashboard{Pinger: p, Interval: time.Second}
}

// Sample records one reply per series.
func (d *Dashboard) Sample(series []*Series) {
	for _, s := range series {
		r := d.Pinger.Sample(s.Address)
		s.Add(float64(r.Time.Milliseconds()), r.TTL)
	}
}

// StatsText summarises the latest samples for the status panel.
func StatsText(series []*Series, paused bool) string {
	var b strings.Builder
	if len(series) == 0 {
		b.WriteString("No connected devices to monitor.\n")
	}
	for _, s := range series {
		fmt.Fprintf(&b, "%-15s last: %3.0f ms | avg: %5.1f ms | TTL: %d\n", s.Address, s.Latest(), s.Average(), s.LastTTL())
	}
	if paused {
		b.WriteString("\n(PAUSED) ")
	} else {
		b.WriteString("\n")
	}
	b.WriteString("Press 'q' to exit, 'r' to reset, 'p' to pause/resume")
	return b.String()
}

// Run takes over the terminal until the user quits or ctx is done.
func (d *Dashboard) Run(ctx context.Context, devices []*device.Device) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize UI: %w", err)
	}
	defer ui.Close()

	var series []*Series
	var plots []*widgets.Plot
	for i, dev := range devices {
		if i == maxPlots {
			break
		}
		series = append(series, NewSeries(dev.Address()))

		p := widgets.NewPlot()
		p.Title = fmt.Sprintf("%s %s - Latency (ms)", dev.Kind(), dev.Address())
		p.Data = [][]float64{{0, 0}}
		p.DataLabels = []string{dev.Address()}
		p.LineColors[0] = plotColors[i%len(plotColors)]
		p.DotMarkerRune = '•'
		p.AxesColor = ui.ColorWhite
		plots = append(plots, p)
	}

	stats := widgets.NewParagraph()
	stats.Title = "Statistics"

	paused := false
	render := func() {
		stats.Text = StatsText(series, paused)
		for i, p := range plots {
			p.Data[0] = series[i].Points()
		}
		d.layout(plots, stats)

		items := make([]ui.Drawable, 0, len(plots)+1)
		for _, p := range plots {
			items = append(items, p)
		}
		items = append(items, stats)
		ui.Render(items...)
	}
	render()

	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	events := ui.PollEvents()

	for {
		select {
		case <-ctx.Done():
			return nil
		case e := <-events:
			switch e.ID {
			case "q", "<C-c>":
				return nil
			case "r":
				for _, s := range series {
					s.Reset()
				}
				render()
			case "p":
				paused = !paused
				render()
			case "<Resize>":
				render()
			}
		case <-ticker.C:
			if paused {
				continue
			}
			d.Sample(series)
			render()
		}
	}
}

func (d *Dashboard) layout(plots []*widgets.Plot, stats *widgets.Paragraph) {
	width, height := ui.TerminalDimensions()
	statsHeight := len(plots) + 4
	if statsHeight < 7 {
		statsHeight = 7
	}

	if len(plots) == 0 {
		stats.SetRect(0, 0, width, statsHeight)
		return
	}

	plotHeight := (height - statsHeight) / len(plots)
	for i, p := range plots {
		p.SetRect(0, i*plotHeight, width, (i+1)*plotHeight)
	}
	stats.SetRect(0, height-statsHeight, width, height)
}
