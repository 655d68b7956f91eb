package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/invertedmushroom/bg3bridge/bridge"
	"github.com/invertedmushroom/bg3bridge/config"
	"github.com/invertedmushroom/bg3bridge/sink"
	"github.com/invertedmushroom/bg3bridge/spacemouse"
)

var (
	devicePath string
	dryRun     bool
)

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Run the SpaceMouse-to-keyboard bridge",
	Long: `Bridge reads raw HID reports from a 3Dconnexion SpaceMouse and turns
them into Baldur's Gate 3 key input: translation pans the camera, twist
rotates it, the Z axis zooms, and puck buttons tap their mapped shortcuts.

The device is a raw HID node, e.g. /dev/hidraw3 on Linux. With --dry-run
every key event is logged instead of injected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		path := devicePath
		if path == "" {
			path = cfg.Device.Path
		}
		if path == "" {
			return errors.New("no device: pass --device or set device.path in the config")
		}

		out := sink.New()
		if dryRun {
			out = sink.LogSink{}
		}

		eng, err := bridge.New(cfg, out)
		if err != nil {
			return err
		}

		dev, err := spacemouse.Open(path)
		if err != nil {
			return err
		}
		defer dev.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log.Info().Str("version", Version).Str("device", path).Bool("dryRun", dryRun).Msg("bridge running")

		events := make(chan spacemouse.Event, 16)
		readErr := make(chan error, 1)
		go func() {
			readErr <- dev.Run(ctx, events)
		}()

		runErr := eng.Run(ctx, events)
		if err := <-readErr; err != nil && !errors.Is(err, ctx.Err()) {
			return err
		}
		if runErr != nil && !errors.Is(runErr, ctx.Err()) {
			return runErr
		}
		log.Info().Msg("bridge stopped")
		return nil
	},
}

func init() {
	bridgeCmd.Flags().StringVarP(&devicePath, "device", "d", "", "raw HID device node")
	bridgeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "log key events instead of injecting them")
}
