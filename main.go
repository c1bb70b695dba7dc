package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/exp/mmap"

	"addrlib-dump/addrlib"
)

const (
	version      = "0.1.0"
	outExtension = ".txt"
)

var log = logrus.WithFields(logrus.Fields{"pkg": "main"})

func main() {
	app := cli.NewApp()
	app.Name = "addrdump"
	app.Version = version
	app.Usage = "dump a packed address library to a sorted text listing"
	app.ArgsUsage = "<library file>"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "enable debug logging",
		},
	}
	app.Action = dump

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func dump(c *cli.Context) error {
	if c.Bool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if len(c.Args()) != 1 {
		return fmt.Errorf("expected only 1 argument (the file path): got %d", len(c.Args()))
	}
	inPath := c.Args()[0]

	src, err := mmap.Open(inPath)
	if err != nil {
		return err
	}
	defer src.Close()

	cur := addrlib.NewCursor(src, int64(src.Len()))
	header, mappings, err := addrlib.DecodeLibrary(cur)
	if err != nil {
		return fmt.Errorf("%s: %v", inPath, err)
	}
	log.WithFields(logrus.Fields{
		"format":      header.Format,
		"pointerSize": header.PointerSize,
		"mappings":    len(mappings),
	}).Debug("decoded library")

	// The listing is only written once the whole decode has succeeded; a
	// failed decode leaves no output artifact behind.
	out, err := os.Create(replaceExtension(inPath, outExtension))
	if err != nil {
		return err
	}
	if err := addrlib.WriteMappings(out, mappings); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// replaceExtension swaps path's extension for ext, appending ext when path
// has none.
func replaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
