package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path"
	"slices"
	"strings"

	"github.com/fatih/color"
)

// maxComponents is how many components one commit may touch.
const maxComponents = 2

var warn = color.New(color.FgYellow, color.Bold)

func main() {
	cmd := exec.Command("git", "diff", "--cached", "--name-only")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		fmt.Printf("Warning: could not check staged files: %v\n", err)
		os.Exit(0)
	}

	touched := components(strings.Split(out.String(), "\n"))
	if len(touched) > maxComponents {
		warn.Println("You are modifying multiple components in a single commit:")
		for _, c := range touched {
			fmt.Printf(" - %s\n", c)
		}
		fmt.Println("Atomic commits should ideally affect only one component.")
		os.Exit(1)
	}
}

// components maps staged paths to the parts of the editor they belong to.
// Docs, config and tools don't count.
func components(files []string) []string {
	var res []string
	add := func(c string) {
		if !slices.Contains(res, c) {
			res = append(res, c)
		}
	}

	for _, f := range files {
		f = strings.TrimSpace(f)
		if f == "" || path.Ext(f) != ".go" {
			continue
		}
		dir := path.Dir(f)
		switch {
		case dir == ".":
			add("cli")
		case dir == "app/core" || strings.HasPrefix(dir, "app/core/"):
			add("core")
		case dir == "app/telemetry":
			add("telemetry")
		case dir == "app":
			add("app")
		case dir == "util":
			add("util")
		}
	}
	slices.Sort(res)
	return res
}
