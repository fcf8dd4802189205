//go:build !duitdraw && !windows
// +build !duitdraw,!windows

package main

// lucidasans font is called lucsans in plan9port.
const defaultFont = "/lib/font/bit/lucsans/euro.8.font"
