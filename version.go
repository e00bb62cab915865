package main

import (
	"github.com/2ip-api/twoip/twoiplib"
)

var version = twoiplib.Version
