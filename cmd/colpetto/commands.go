/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/verdiwm/colpetto/internal/config"
	"github.com/verdiwm/colpetto/internal/logger"
	"github.com/verdiwm/colpetto/pkg/helper"
	"github.com/verdiwm/colpetto/pkg/libinput"
	"github.com/verdiwm/colpetto/pkg/logsink"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print key presses and device changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return streamEvents(func(ev libinput.Event) {
			if line, ok := describeKey(ev); ok {
				fmt.Println(line)
			}
		})
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print every event",
	RunE: func(cmd *cobra.Command, args []string) error {
		return streamEvents(func(ev libinput.Event) {
			fmt.Println(describe(ev))
		})
	},
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the devices of the seat and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		li, err := openContext()
		if err != nil {
			return err
		}
		defer li.Close()

		if err := li.Dispatch(); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SYSNAME\tNAME\tSEAT\tCAPABILITIES")
		for ev := li.GetEvent(); ev != nil; ev = li.GetEvent() {
			if _, ok := ev.(*libinput.DeviceAdded); ok {
				fmt.Fprintln(w, deviceRow(ev))
			}
			ev.Close()
		}
		return w.Flush()
	},
}

var (
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	deviceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch events from a dedicated libinput goroutine",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Backend != config.BackendUdev {
			return fmt.Errorf("watch supports the udev backend only")
		}
		ctx, stop := signalContext()
		defer stop()

		hc := helper.Config{Seat: cfg.Seat}
		if cfg.Log.Native {
			hc.Logger = logsink.Charm(logger.Logger)
		}
		h, err := helper.Start(hc)
		if err != nil {
			return err
		}
		logger.Debugf("helper running on seat %s", cfg.Seat)
		go func() {
			<-ctx.Done()
			logger.Info("shutting down libinput instance")
			h.Shutdown()
		}()

		for ev := range h.Events() {
			line := fmt.Sprintf("Got %s event from %s",
				nameStyle.Render(fmt.Sprintf("%q", ev.Name)),
				deviceStyle.Render(fmt.Sprintf("%q", ev.DeviceName)))
			if ev.Key != nil {
				line += " " + keyStyle.Render(fmt.Sprintf("key=%d %s", ev.Key.Code, ev.Key.State))
			}
			fmt.Println(line)
		}
		<-h.Done()
		return h.Err()
	},
}
