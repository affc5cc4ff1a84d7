package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/tinygui/cmd/tinygui/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = commands.Init(args)
	case "render":
		err = commands.Render(args)
	case "replay":
		err = commands.Replay(args)
	case "run":
		err = commands.Run(args)
	case "version", "-v", "--version":
		fmt.Printf("tinygui version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tinygui - retained-mode GUI for small displays

Usage: tinygui <command> [options]

Commands:
  init      Write a default tinygui.toml
  render    Render the demo scene to a PNG file
  replay    Replay a YAML touch script against the demo scene
  run       Drive a native LCD/touch driver library
  version   Print version information
  help      Show this help message

Examples:
  tinygui render -o scene.png
  tinygui replay -o dragged.png drag.yaml
  TINYGUI_DRIVER=./libtinygui_lcd.so tinygui run

Configuration:
  Display size, memory budget, logging and colors are read from
  tinygui.toml (or tinygui.yaml) in the current directory.`)
}
