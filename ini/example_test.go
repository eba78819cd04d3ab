// Copyright 2026 Daniel McGuire
// SPDX-License-Identifier: MIT

package ini_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/DanielLMcGuire/iniHandler/ini"
)

func ExampleParse() {
	const iniFile = "[Graphics]\n" +
		"Resolution=1920x1080\n" +
		"Fullscreen=true\n" +
		"\n" +
		"[Audio]\n" +
		"Volume=80\n"
	cfg, err := ini.Parse(strings.NewReader(iniFile))
	if err != nil {
		// handle error
	}

	fmt.Printf("Sections: %q\n", cfg.Sections())
	fmt.Println("Resolution:", cfg.Get("Graphics", "Resolution"))
	fmt.Println("Volume:", cfg.Get("Audio", "Volume"))

	// Output:
	// Sections: ["Graphics" "Audio"]
	// Resolution: 1920x1080
	// Volume: 80
}

func ExampleFile_Section() {
	cfg, err := ini.Parse(strings.NewReader("[Graphics]\nResolution=1920x1080\nFullscreen=true\n"))
	if err != nil {
		// handle error
	}
	entries, ok := cfg.Section("Graphics")
	if !ok {
		// handle missing section
	}
	for _, e := range entries {
		fmt.Println(e.Key, "=", e.Value)
	}

	// Output:
	// Resolution = 1920x1080
	// Fullscreen = true
}

func ExampleFile_MarshalText() {
	// Using new(ini.File) creates an empty File.
	// You can also modify an existing File from Parse.
	f := new(ini.File)

	// Use File.Set to populate values.
	f.Set("Graphics", "Resolution", "1920x1080")
	f.Set("Audio", "Volume", "80")

	// Marshal to INI format and write to a file.
	text, err := f.MarshalText()
	if err != nil {
		// handle error
	}
	if _, err := os.Stdout.Write(text); err != nil {
		// handle error
	}

	// Output:
	// [Graphics]
	// Resolution=1920x1080
	//
	// [Audio]
	// Volume=80
}
