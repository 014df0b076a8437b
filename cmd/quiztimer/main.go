package main

import (
	"os"

	"github.com/ayoisaiah/quiztimer/app"
	"github.com/ayoisaiah/quiztimer/internal/osutil"
	"github.com/ayoisaiah/quiztimer/internal/pathutil"
	"github.com/ayoisaiah/quiztimer/report"
)

func run(args []string) error {
	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Error(err)
		os.Exit(int(osutil.ExitError))
	}
}
