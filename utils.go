package main

import (
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// copyToClipboard writes text to the system clipboard, preferring
// pbcopy on macOS where the clipboard package can be flaky with
// large payloads.
func copyToClipboard(text string) error {
	if runtime.GOOS == "darwin" {
		cmd := exec.Command("pbcopy")
		in, err := cmd.StdinPipe()
		if err == nil {
			if err := cmd.Start(); err == nil {
				in.Write([]byte(text))
				in.Close()
				if cmd.Wait() == nil {
					return nil
				}
			}
		}
	}
	return clipboard.WriteAll(text)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
