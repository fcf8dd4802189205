//go:build duitdraw || windows
// +build duitdraw windows

package main

const defaultFont = ""
