// Command collision-sandbox is an interactive terminal view of the movement kernel
// Arrows move, space or up jumps, t toggles the trace overlay, r reloads the scene, q quits
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	var opts options
	flag.StringVar(&opts.ScenePath, "scene", "cmd/collision-sandbox/scene.yaml", "scene YAML file")
	flag.StringVar(&opts.ConfigPath, "config", "", "config YAML file (defaults built in)")
	flag.StringVar(&opts.LogPath, "log", "collision-sandbox.log", "log file; the terminal is owned by the view")
	flag.BoolVar(&opts.Sound, "sound", false, "play a tone on landing")
	flag.BoolVar(&opts.Trace, "trace", false, "start with the trace overlay on")
	flag.Parse()

	sb, cleanup, err := initializeSandbox(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collision-sandbox: %v\n", err)
		os.Exit(1)
	}
	sb.run()
	cleanup()
}
