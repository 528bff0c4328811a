package main

import (
	"github.com/BrugadaSyndrome/bslogger"
)

var (
	mainLogger     = bslogger.NewLogger("Main", bslogger.Normal, nil)
	renderLogger   = bslogger.NewLogger("Render", bslogger.Normal, nil)
	settingsLogger = bslogger.NewLogger("Settings", bslogger.Normal, nil)
)
