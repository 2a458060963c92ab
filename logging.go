// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"io"
	"log/slog"
	"os"
)

// setupLogging sends debug records to stderr when tracing and discards
// everything otherwise.
func setupLogging(trace bool) {
	var w io.Writer = io.Discard
	level := slog.LevelInfo
	if trace {
		w = os.Stderr
		level = slog.LevelDebug
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(h))
}
