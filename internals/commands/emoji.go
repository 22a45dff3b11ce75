package commands

import (
	"os"
	"runtime"
)

var emojiSupport = detectEmojiSupport(runtime.GOOS, os.Getenv)

// EmojiEnabled can be set to false to disable emojis (--no-color does this)
var EmojiEnabled = true

func detectEmojiSupport(goos string, getenv func(string) string) bool {
	// dumb terminals can't render them
	if getenv("TERM") == "dumb" {
		return false
	}
	// everything that is not windows usually has emoji support
	if goos != "windows" {
		return true
	}
	// check if we are running in the windows terminal
	// (windows terminal does not set this, but raw cmd or powershell do)
	return getenv("SESSIONNAME") == ""
}

func EmojiSupported() bool {
	return emojiSupport
}

// Emoji returns the given string (usually a emoji) if the current terminal
// (probably) supports it
func Emoji(e string) string {
	if emojiSupport && EmojiEnabled {
		return e
	}
	return ""
}
